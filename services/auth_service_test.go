package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banana-code/banana-code-backend/models"
	"github.com/banana-code/banana-code-backend/services"
)

func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)

	course := createCourse(t, db, "P101", models.StatusActivo)

	user, token, err := services.RegisterUser(db, services.RegisterData{
		Email:    "maria@test.com",
		Password: "12qwaszx",
		Name:     "Maria Rocha",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, models.RoleEstudiante, user.Role)
	assert.NotEqual(t, "12qwaszx", user.Password) // almacenada cifrada
	assert.Nil(t, user.EmailVerified)

	// Token de verificación persistido con vigencia
	var stored models.VerificationToken
	require.NoError(t, db.First(&stored, "token = ?", token).Error)
	assert.Equal(t, user.Email, stored.Identifier)
	assert.True(t, stored.Expires.After(time.Now()))

	// Inscripción automática en el curso activo
	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment, "user_id = ?", user.ID).Error)
	assert.Equal(t, course.ID, enrollment.CourseID)
}

func TestRegisterUserSinCursoActivo(t *testing.T) {
	db := setupTestDB(t)

	user, _, err := services.RegisterUser(db, services.RegisterData{
		Email:    "pedro@test.com",
		Password: "12qwaszx",
		Name:     "Pedro Gutierrez",
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterUserExistente(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "maria@test.com", models.RoleEstudiante)

	_, _, err := services.RegisterUser(db, services.RegisterData{
		Email:    "maria@test.com",
		Password: "12qwaszx",
		Name:     "Maria Rocha",
	})
	require.ErrorIs(t, err, services.ErrUsuarioExistente)
}

func TestVerifyEmail(t *testing.T) {
	db := setupTestDB(t)

	user, token, err := services.RegisterUser(db, services.RegisterData{
		Email:    "maria@test.com",
		Password: "12qwaszx",
		Name:     "Maria Rocha",
	})
	require.NoError(t, err)

	require.NoError(t, services.VerifyEmail(db, token))

	var after models.User
	require.NoError(t, db.First(&after, "id = ?", user.ID).Error)
	assert.NotNil(t, after.EmailVerified)

	// El token se consume al verificar
	var count int64
	db.Model(&models.VerificationToken{}).Where("token = ?", token).Count(&count)
	assert.Zero(t, count)

	// Reutilizarlo debe fallar
	require.ErrorIs(t, services.VerifyEmail(db, token), services.ErrTokenInvalido)
}

func TestVerifyEmailExpirado(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "maria@test.com", models.RoleEstudiante)

	expired := models.VerificationToken{
		Identifier: "maria@test.com",
		Token:      "token-vencido",
		Expires:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	require.ErrorIs(t, services.VerifyEmail(db, "token-vencido"), services.ErrTokenInvalido)
}

func TestVerifyEmailUsuarioNoEncontrado(t *testing.T) {
	db := setupTestDB(t)

	orphan := models.VerificationToken{
		Identifier: "nadie@test.com",
		Token:      "token-huerfano",
		Expires:    time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&orphan).Error)

	require.ErrorIs(t, services.VerifyEmail(db, "token-huerfano"), services.ErrUsuarioNoEncontrado)
}

func TestFindOrCreateGoogleUserNuevo(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.FindOrCreateGoogleUser(db, "maria@test.com", "Maria Rocha", "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEstudiante, user.Role)
	assert.Empty(t, user.Password)

	var account models.Account
	require.NoError(t, db.First(&account, "provider = ? AND provider_account_id = ?", "google", "google-sub-1").Error)
	assert.Equal(t, user.ID, account.UserID)
}

func TestFindOrCreateGoogleUserVinculaUsuarioExistente(t *testing.T) {
	db := setupTestDB(t)

	// Usuario registrado con credenciales que luego entra con Google
	existing := createUser(t, db, "maria@test.com", models.RoleEstudiante)

	user, err := services.FindOrCreateGoogleUser(db, "maria@test.com", "Maria Rocha", "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)

	var account models.Account
	require.NoError(t, db.First(&account, "provider = ? AND provider_account_id = ?", "google", "google-sub-1").Error)
	assert.Equal(t, existing.ID, account.UserID)

	// Un segundo inicio de sesión no duplica la cuenta
	_, err = services.FindOrCreateGoogleUser(db, "maria@test.com", "Maria Rocha", "google-sub-1")
	require.NoError(t, err)

	var count int64
	db.Model(&models.Account{}).Where("user_id = ?", existing.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnsureAdmin(t *testing.T) {
	db := setupTestDB(t)

	t.Setenv("ADMIN_EMAIL", "admin@admin.com")
	t.Setenv("ADMIN_PASS", "12qwaszx")
	t.Setenv("ADMIN_NAME", "Administrador")

	require.NoError(t, services.EnsureAdmin(db))

	var admins []models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdministrador).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@admin.com", admins[0].Email)

	// Segunda llamada no duplica
	require.NoError(t, services.EnsureAdmin(db))
	require.NoError(t, db.Where("role = ?", models.RoleAdministrador).Find(&admins).Error)
	assert.Len(t, admins, 1)
}

package services

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/banana-code/banana-code-backend/models"
)

var (
	ErrUsuarioExistente = errors.New("Usuario existente")
	ErrTokenInvalido    = errors.New("Token invalido o expirado")
)

type RegisterData struct {
	Email       string
	Password    string
	Name        string
	StudentCode *string
	Phone       *string
}

// RegisterUser crea un estudiante con contraseña cifrada, genera su token de
// verificación y lo inscribe en el curso activo si existe uno. Devuelve el
// usuario y el token pendiente de verificación.
func RegisterUser(db *gorm.DB, data RegisterData) (*models.User, string, error) {
	var existing models.User
	if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
		return nil, "", ErrUsuarioExistente
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:        data.Name,
		Email:       data.Email,
		Password:    string(hashed),
		Role:        models.RoleEstudiante,
		StudentCode: data.StudentCode,
		Phone:       data.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token := models.VerificationToken{
		Identifier: user.Email,
		Token:      uuid.NewString(),
		Expires:    time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(&token).Error; err != nil {
		return nil, "", err
	}

	// Inscripción automática en el curso activo. La matrícula se crea al
	// registrarse; si no hay curso activo el registro sigue siendo válido.
	var active models.Course
	if err := db.Where("status = ?", models.StatusActivo).First(&active).Error; err == nil {
		enrollment := models.Enrollment{UserID: user.ID, CourseID: active.ID}
		if err := db.Create(&enrollment).Error; err != nil {
			log.Println("no se pudo inscribir al estudiante en el curso activo:", err)
		}
	}

	return &user, token.Token, nil
}

// FindOrCreateGoogleUser busca al usuario por su correo, lo crea en el primer
// inicio de sesión y garantiza que la cuenta de Google quede vinculada aunque
// el usuario ya existiera con credenciales.
func FindOrCreateGoogleUser(db *gorm.DB, email, name, sub string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = models.User{
			Email: email,
			Name:  name,
			Role:  models.RoleEstudiante,
			// Sin contraseña: la cuenta es solo OAuth
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
	}

	var account models.Account
	err := db.Where("provider = ? AND provider_account_id = ?", "google", sub).
		First(&account).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = models.Account{
		UserID:            user.ID,
		Provider:          "google",
		ProviderAccountID: sub,
	}
	if err := db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyEmail consume un token de verificación y marca el correo verificado.
func VerifyEmail(db *gorm.DB, token string) error {
	var tokenData models.VerificationToken
	if err := db.Where("token = ?", token).First(&tokenData).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalido
		}
		return err
	}
	if tokenData.Expires.Before(time.Now()) {
		return ErrTokenInvalido
	}

	var user models.User
	if err := db.Where("email = ?", tokenData.Identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNoEncontrado
		}
		return err
	}

	now := time.Now()
	if err := db.Model(&user).Update("email_verified", &now).Error; err != nil {
		return err
	}
	return db.Delete(&models.VerificationToken{}, "token = ?", token).Error
}

// EnsureAdmin crea el administrador inicial si no existe ninguno.
func EnsureAdmin(db *gorm.DB) error {
	var admin models.User
	err := db.Where("role = ?", models.RoleAdministrador).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(os.Getenv("ADMIN_PASS")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return db.Create(&models.User{
		Name:          os.Getenv("ADMIN_NAME"),
		Email:         os.Getenv("ADMIN_EMAIL"),
		Password:      string(hashed),
		Role:          models.RoleAdministrador,
		EmailVerified: &now,
	}).Error
}

package controllers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/banana-code/banana-code-backend/config"
	"github.com/banana-code/banana-code-backend/models"
)

// setupTestDB abre una base SQLite en memoria y la deja en config.DB para
// que los controladores la usen durante la prueba.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })

	return db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Name:  "Usuario Prueba",
		Email: email,
		Role:  role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, code string, status models.CourseStatus) models.Course {
	t.Helper()
	course := models.Course{
		Name:   "Curso " + code,
		Code:   code,
		Status: status,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

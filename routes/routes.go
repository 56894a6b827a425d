package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/banana-code/banana-code-backend/controllers"
	"github.com/banana-code/banana-code-backend/middleware"
	"github.com/banana-code/banana-code-backend/models"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.GET("/verify", controllers.VerifyEmail)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
	}

	// Lectura de cursos: cualquier usuario autenticado
	courses := api.Group("/courses")
	courses.Use(middleware.AuthMiddleware())
	{
		courses.GET("", controllers.GetCourses)
		courses.GET("/status", controllers.GetCoursesByStatus)
		courses.GET("/:id", controllers.GetCourseDetail)
		courses.GET("/:id/topics", controllers.GetCourseTopics)
	}

	// Edición de cursos y flujo de estados: administrador y profesor editor
	editor := api.Group("/courses")
	editor.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdministrador, models.RoleProfesorEditor))
	{
		editor.POST("", controllers.CreateCourse)
		editor.PUT("/status", controllers.ChangeCourseStatus)
		editor.PUT("/:id", controllers.UpdateCourse)
		editor.DELETE("/:id", controllers.DeleteCourse)
	}

	// Listado de estudiantes: personal docente y administración
	students := api.Group("/students")
	students.Use(middleware.AuthMiddleware(), middleware.RequireRoles(
		models.RoleAdministrador, models.RoleProfesorEditor, models.RoleProfesorEjecutor))
	{
		students.GET("", controllers.GetStudents)
	}

	// Administración de usuarios: solo administrador
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdministrador))
	{
		users.GET("", controllers.ListUsers)
		users.PUT("", controllers.ChangeUserRole)
	}

	return r
}

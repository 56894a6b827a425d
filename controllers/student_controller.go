package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/banana-code/banana-code-backend/config"
	"github.com/banana-code/banana-code-backend/models"
)

// GET /api/students?courseId=
// Lista los estudiantes (usuarios con rol ESTUDIANTE) inscritos en un curso.
func GetStudents(c *gin.Context) {
	courseID := c.Query("courseId")
	if courseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro courseId es requerido"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Curso no encontrado"})
			return
		}
		log.Println("error al obtener el curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	var enrollments []models.Enrollment
	err := config.DB.
		Joins("JOIN users ON users.id = enrollments.user_id").
		Where("enrollments.course_id = ? AND users.role = ?", courseID, models.RoleEstudiante).
		Order("users.name ASC").
		Preload("User").
		Find(&enrollments).Error
	if err != nil {
		log.Println("error al obtener estudiantes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	students := make([]gin.H, 0, len(enrollments))
	for _, enrollment := range enrollments {
		firstName, lastName := splitName(enrollment.User.Name)
		students = append(students, gin.H{
			"id":          enrollment.User.ID,
			"firstName":   firstName,
			"lastName":    lastName,
			"email":       enrollment.User.Email,
			"studentCode": strValue(enrollment.User.StudentCode),
			"phone":       strValue(enrollment.User.Phone),
			"role":        enrollment.User.Role,
			"enrolledAt":  enrollment.EnrolledAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"course": gin.H{
			"id":   course.ID,
			"name": course.Name,
			"code": course.Code,
		},
		"count":    len(students),
		"students": students,
	})
}

// splitName separa el nombre completo en nombre y apellidos.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/banana-code/banana-code-backend/config"
	"github.com/banana-code/banana-code-backend/models"
	"github.com/banana-code/banana-code-backend/services"
)

type CreateCourseInput struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Code        string                `json:"code"`
	Content     *models.CourseContent `json:"content"`
}

type UpdateCourseInput struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Content     *models.CourseContent `json:"content"`
}

type ChangeStatusInput struct {
	ID     string              `json:"id" binding:"required"`
	Status models.CourseStatus `json:"status" binding:"required"`
}

// courseResponse es la forma que espera el frontend del editor.
func courseResponse(course models.Course, students int64) gin.H {
	content := course.Content.Data()
	return gin.H{
		"id":          course.ID,
		"title":       course.Name,
		"description": course.Description,
		"code":        course.Code,
		"status":      course.Status,
		"students":    students,
		"topics":      len(content.Topics),
		"progress":    0,
		"lastUpdated": course.UpdatedAt.Format(time.RFC3339),
		"content":     content,
	}
}

// GET /api/courses
func GetCourses(c *gin.Context) {
	var courses []models.Course
	if err := config.DB.Order("updated_at DESC").Find(&courses).Error; err != nil {
		log.Println("error al obtener cursos:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los cursos"})
		return
	}

	// Total de inscritos por curso en una sola consulta
	type pair struct {
		CourseID uuid.UUID
		Total    int64
	}
	var counts []pair
	if err := config.DB.Model(&models.Enrollment{}).
		Select("course_id, COUNT(*) AS total").
		Group("course_id").
		Scan(&counts).Error; err != nil {
		log.Println("error al contar inscripciones:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los cursos"})
		return
	}
	byCourse := make(map[uuid.UUID]int64, len(counts))
	for _, p := range counts {
		byCourse[p.CourseID] = p.Total
	}

	mapped := make([]gin.H, 0, len(courses))
	for _, course := range courses {
		mapped = append(mapped, courseResponse(course, byCourse[course.ID]))
	}
	c.JSON(http.StatusOK, mapped)
}

// POST /api/courses
func CreateCourse(c *gin.Context) {
	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Nuevo Curso"
	}
	description := input.Description
	if description == "" {
		description = "Descripción del curso"
	}
	content := models.CourseContent{Topics: []models.Topic{}}
	if input.Content != nil {
		content = *input.Content
	}
	code := strings.TrimSpace(input.Code)
	if code == "" {
		// Sin código explícito se deriva uno del título
		code = strings.ToUpper(slug.Make(title))
	}

	course := models.Course{
		Name:        title,
		Description: description,
		Code:        code,
		Slug:        slug.Make(title),
		Status:      models.StatusBorrador,
		Content:     datatypes.NewJSONType(content),
	}
	if err := config.DB.Create(&course).Error; err != nil {
		log.Println("error al crear curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el curso"})
		return
	}

	c.JSON(http.StatusCreated, courseResponse(course, 0))
}

// GET /api/courses/:id
func GetCourseDetail(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Curso no encontrado"})
			return
		}
		log.Println("error al obtener curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el curso"})
		return
	}

	var students int64
	config.DB.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&students)

	c.JSON(http.StatusOK, courseResponse(course, students))
}

// PUT /api/courses/:id
func UpdateCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
		return
	}

	var input UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Curso no encontrado"})
			return
		}
		log.Println("error al obtener curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el curso"})
		return
	}

	course.Name = input.Title
	course.Description = input.Description
	course.Slug = slug.Make(input.Title)
	if input.Content != nil {
		course.Content = datatypes.NewJSONType(*input.Content)
	}

	if err := config.DB.Save(&course).Error; err != nil {
		log.Println("error al actualizar curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el curso"})
		return
	}

	var students int64
	config.DB.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&students)

	c.JSON(http.StatusOK, courseResponse(course, students))
}

// DELETE /api/courses/:id
func DeleteCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
		return
	}

	if err := config.DB.Delete(&models.Course{}, "id = ?", courseID).Error; err != nil {
		log.Println("error al eliminar curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el curso"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Curso eliminado exitosamente"})
}

// GET /api/courses/status?status=
func GetCoursesByStatus(c *gin.Context) {
	status := models.CourseStatus(c.Query("status"))
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro status es requerido"})
		return
	}
	if !models.ValidCourseStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de curso no válido"})
		return
	}

	courses, err := services.CoursesByStatus(config.DB, status)
	if err != nil {
		log.Println("error al obtener cursos por estado:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los cursos"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// PUT /api/courses/status
func ChangeCourseStatus(c *gin.Context) {
	var input ChangeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	courseID, err := uuid.Parse(input.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
		return
	}
	if !models.ValidCourseStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de curso no válido"})
		return
	}

	course, err := services.ChangeCourseStatus(config.DB, courseID, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrCursoNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Curso no encontrado"})
			return
		}
		log.Println("error al cambiar estado del curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// GET /api/courses/:id/topics
func GetCourseTopics(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
		return
	}

	var course models.Course
	if err := config.DB.Select("id", "content").First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Curso no encontrado"})
			return
		}
		log.Println("error al obtener curso:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el curso"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courseId": course.ID,
		"topics":   course.Content.Data().Topics,
	})
}

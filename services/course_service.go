package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/banana-code/banana-code-backend/models"
)

var ErrCursoNoEncontrado = errors.New("Curso no encontrado")

// CoursesByStatus devuelve los cursos con el estado indicado.
func CoursesByStatus(db *gorm.DB, status models.CourseStatus) ([]models.Course, error) {
	var courses []models.Course
	if err := db.Where("status = ?", status).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// ChangeCourseStatus actualiza el estado de un curso. Cuando el nuevo estado
// es ACTIVO, primero pasa a INACTIVO todos los cursos activos y luego activa
// el curso destino, dentro de una misma transacción para que nunca quede el
// sistema sin curso activo a mitad de camino.
func ChangeCourseStatus(db *gorm.DB, id uuid.UUID, status models.CourseStatus) (*models.Course, error) {
	var course models.Course

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCursoNoEncontrado
			}
			return err
		}

		if status == models.StatusActivo {
			if err := tx.Model(&models.Course{}).
				Where("status = ?", models.StatusActivo).
				Update("status", models.StatusInactivo).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&course).Update("status", status).Error; err != nil {
			return err
		}
		course.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &course, nil
}

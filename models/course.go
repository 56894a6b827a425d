package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseStatus string

const (
	StatusBorrador  CourseStatus = "BORRADOR"
	StatusActivo    CourseStatus = "ACTIVO"
	StatusInactivo  CourseStatus = "INACTIVO"
	StatusHistorico CourseStatus = "HISTORICO"
)

// ValidCourseStatus indica si el valor recibido es un estado conocido.
func ValidCourseStatus(s CourseStatus) bool {
	switch s {
	case StatusBorrador, StatusActivo, StatusInactivo, StatusHistorico:
		return true
	}
	return false
}

type BlockType string

const (
	BlockText BlockType = "Text"
	BlockCode BlockType = "Code"
)

// ContentBlock es un bloque de un tema: texto plano o código.
type ContentBlock struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
}

// Topic vive dentro del documento JSON del curso; no tiene tabla propia.
type Topic struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	IsOpen      bool           `json:"isOpen"`
	IsPublished bool           `json:"isPublished"`
	Contents    []ContentBlock `json:"contents"`
}

// CourseContent es el árbol de temas embebido en el curso.
type CourseContent struct {
	Topics []Topic `json:"topics"`
}

type Course struct {
	ID          uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                            `gorm:"size:255;not null" json:"name"`
	Description string                            `gorm:"type:text" json:"description"`
	Code        string                            `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Slug        string                            `gorm:"size:255;index" json:"slug"`
	Status      CourseStatus                      `gorm:"type:varchar(20);not null;default:'BORRADOR'" json:"status"`
	StartDate   *time.Time                        `json:"start_date,omitempty"`
	EndDate     *time.Time                        `json:"end_date,omitempty"`
	Content     datatypes.JSONType[CourseContent] `json:"content"`
	CreatedAt   time.Time                         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`

	Enrollments []Enrollment `gorm:"foreignKey:CourseID" json:"-"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

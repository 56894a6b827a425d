package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdministrador    Role = "ADMINISTRADOR"     // Administrador del sistema
	RoleProfesorEditor   Role = "PROFESOR_EDITOR"   // Profesor que edita el contenido
	RoleProfesorEjecutor Role = "PROFESOR_EJECUTOR" // Profesor que dicta el curso
	RoleEstudiante       Role = "ESTUDIANTE"        // Estudiante inscrito
)

// ValidRole indica si el valor recibido corresponde a un rol conocido.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdministrador, RoleProfesorEditor, RoleProfesorEjecutor, RoleEstudiante:
		return true
	}
	return false
}

type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:150;not null" json:"name"`
	Email         string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password      string     `gorm:"type:text" json:"-"` // vacío para cuentas OAuth
	Role          Role       `gorm:"type:varchar(20);not null;default:'ESTUDIANTE'" json:"role"`
	StudentCode   *string    `gorm:"size:20" json:"student_code,omitempty"`
	Phone         *string    `gorm:"size:30" json:"phone,omitempty"`
	Image         *string    `gorm:"type:text" json:"image,omitempty"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relaciones
	Accounts    []Account    `gorm:"foreignKey:UserID" json:"-"`
	Enrollments []Enrollment `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Account vincula un usuario con un proveedor externo (Google, etc.).
type Account struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider          string    `gorm:"size:50;not null;uniqueIndex:idx_provider_account" json:"provider"`
	ProviderAccountID string    `gorm:"size:100;not null;uniqueIndex:idx_provider_account" json:"provider_account_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

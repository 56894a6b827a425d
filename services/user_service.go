package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/banana-code/banana-code-backend/models"
)

var (
	ErrRolAdministrador       = errors.New("No se puede asignar el rol de administrador")
	ErrUsuarioNoEncontrado    = errors.New("Usuario no encontrado")
	ErrAdministradorInmutable = errors.New("No se puede cambiar el rol de un administrador")
)

// ListUsers devuelve todos los usuarios excepto los administradores.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Where("role <> ?", models.RoleAdministrador).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ChangeUserRole cambia el rol de un usuario. No permite asignar el rol de
// administrador ni modificar a un administrador existente. Las tres
// comprobaciones se evalúan siempre en este orden.
func ChangeUserRole(db *gorm.DB, id uuid.UUID, role models.Role) (*models.User, error) {
	if role == models.RoleAdministrador {
		return nil, ErrRolAdministrador
	}

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}

	if user.Role == models.RoleAdministrador {
		return nil, ErrAdministradorInmutable
	}

	if err := db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return &user, nil
}

package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/banana-code/banana-code-backend/config"
	"github.com/banana-code/banana-code-backend/models"
	"github.com/banana-code/banana-code-backend/services"
)

type ChangeRoleInput struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role"`
}

// GET /api/users
// Lista todos los usuarios que no son administradores.
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers(config.DB)
	if err != nil {
		log.Println("error al obtener usuarios:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener usuarios"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// PUT /api/users
func ChangeUserRole(c *gin.Context) {
	var input ChangeRoleInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	userID, err := uuid.Parse(input.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
		return
	}
	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rol no válido"})
		return
	}

	user, err := services.ChangeUserRole(config.DB, userID, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRolAdministrador),
			errors.Is(err, services.ErrUsuarioNoEncontrado),
			errors.Is(err, services.ErrAdministradorInmutable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Println("error al cambiar rol:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cambiar rol"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

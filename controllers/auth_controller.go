package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/auth/credentials/idtoken"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/banana-code/banana-code-backend/config"
	"github.com/banana-code/banana-code-backend/models"
	"github.com/banana-code/banana-code-backend/services"
	"github.com/banana-code/banana-code-backend/utils"
)

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Name        string  `json:"name" binding:"required"`
	StudentCode *string `json:"student_code"`
	Phone       *string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ====== HANDLERS ======

// POST /api/auth/register
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := services.RegisterUser(config.DB, services.RegisterData{
		Email:       input.Email,
		Password:    input.Password,
		Name:        input.Name,
		StudentCode: input.StudentCode,
		Phone:       input.Phone,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsuarioExistente) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario existente"})
			return
		}
		log.Println("error al registrar usuario:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el usuario"})
		return
	}

	// Enviar el correo de verificación sin bloquear la respuesta. Sin SMTP
	// configurado (entornos locales y pruebas) no se intenta el envío.
	if os.Getenv("SMTP_EMAIL") != "" {
		go func() {
			if err := utils.SendVerificationEmail(user.Email, token); err != nil {
				log.Println("error al enviar el correo de verificación:", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro exitoso. Revisa tu correo para verificar la cuenta",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// GET /api/auth/verify?token=
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token no obtenido"})
		return
	}

	if err := services.VerifyEmail(config.DB, token); err != nil {
		switch {
		case errors.Is(err, services.ErrTokenInvalido):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token invalido o expirado"})
		case errors.Is(err, services.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		default:
			log.Println("error al verificar la cuenta:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cuenta verificada"})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

type GoogleLoginInput struct {
	IDToken string `json:"id_token" binding:"required"`
}

// POST /api/auth/logingoogle
func GoogleLogin(c *gin.Context) {
	var input GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validar el id_token contra el GOOGLE_CLIENT_ID configurado
	payload, err := idtoken.Validate(c, input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de Google no válido"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	sub, _ := payload.Claims["sub"].(string)

	user, err := services.FindOrCreateGoogleUser(config.DB, email, name, sub)
	if err != nil {
		log.Println("error en el inicio de sesión con Google:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el usuario de Google"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

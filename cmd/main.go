package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/banana-code/banana-code-backend/config"
	"github.com/banana-code/banana-code-backend/routes"
	"github.com/banana-code/banana-code-backend/services"
)

func main() {
	// Cargar .env
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró el archivo .env")
	}

	config.InitDB()

	// Garantizar que exista el administrador inicial
	if err := services.EnsureAdmin(config.DB); err != nil {
		log.Fatal("No se pudo crear el administrador inicial:", err)
	}

	r := gin.Default()

	// CORS para el frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}

package main

import (
	"fmt"
	"log"
	"os"

	"fotostudio-backend/config"
	"fotostudio-backend/models"
	"fotostudio-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Child{},
		&models.Scheduling{},
		&models.Task{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

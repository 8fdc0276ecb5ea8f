package main

import (
	"log"
	"os"

	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/routes"
)

func main() {
	// Init database
	database.InitDB()

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	port := ":8008"
	if p := os.Getenv("PORT"); p != "" {
		port = ":" + p
	}
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/board")
	log.Println("  GET    /api/tasks")
	log.Println("  POST   /api/tasks")
	log.Println("  GET    /api/contacts")
	log.Println("  GET    /api/categories")
	log.Println("  GET    /api/courses")
	log.Println("  GET    /api/preferences")
	log.Println("  GET    /api/export/tasks")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

package routes

import (
	"github.com/brandoline/Kanbanize.me/internal/handlers"
	"github.com/brandoline/Kanbanize.me/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Kanbanize API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Board endpoint (filter + partition pipeline)
		protectedRoutes.GET("/board", handlers.GetBoard)

		// Task endpoints
		protectedRoutes.GET("/tasks", handlers.GetTasks)
		protectedRoutes.GET("/tasks/:id", handlers.GetTaskByID)
		protectedRoutes.POST("/tasks", handlers.CreateTask)
		protectedRoutes.PUT("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.PATCH("/tasks/:id/status", handlers.UpdateTaskStatus)
		protectedRoutes.DELETE("/tasks/:id", handlers.DeleteTask)

		// Contact endpoints
		protectedRoutes.GET("/contacts", handlers.GetContacts)
		protectedRoutes.POST("/contacts", handlers.CreateContact)
		protectedRoutes.PUT("/contacts/:id", handlers.UpdateContact)
		protectedRoutes.DELETE("/contacts/:id", handlers.DeleteContact)

		// Category endpoints
		protectedRoutes.GET("/categories", handlers.GetCategories)
		protectedRoutes.POST("/categories", handlers.CreateCategory)
		protectedRoutes.PUT("/categories/:id", handlers.UpdateCategory)
		protectedRoutes.DELETE("/categories/:id", handlers.DeleteCategory)

		// Course (InfoTec) endpoints
		protectedRoutes.GET("/courses", handlers.GetCourses)
		protectedRoutes.POST("/courses", handlers.CreateCourse)
		protectedRoutes.PUT("/courses/:id", handlers.UpdateCourse)
		protectedRoutes.DELETE("/courses/:id", handlers.DeleteCourse)

		// UI preferences
		protectedRoutes.GET("/preferences", handlers.GetPreferences)
		protectedRoutes.PUT("/preferences", handlers.UpdatePreferences)

		// CSV exports
		protectedRoutes.GET("/export/tasks", handlers.ExportTasks)
		protectedRoutes.GET("/export/contacts", handlers.ExportContacts)
		protectedRoutes.GET("/export/courses", handlers.ExportCourses)

		// Realtime events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}

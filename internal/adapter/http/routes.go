package http

import (
	"github.com/gin-gonic/gin"

	"mychecklist/internal/adapter/http/handlers"
	"mychecklist/internal/adapter/http/middleware"
	"mychecklist/pkg/jwtauth"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *jwtauth.Provider,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.AuthMiddleware(tokens))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/today", taskHandler.GetToday)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.DELETE("/:id/complete", taskHandler.CancelCompletion)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}

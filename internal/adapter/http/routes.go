package http

import (
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/shared"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts the API under /api. metrics may be nil.
func NewRouter(c *Container, serviceName string, metrics *shared.AppMetrics, logger *shared.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	shared.SetupGinMiddleware(router, serviceName, metrics, logger)

	router.GET("/health", c.HealthHandler.Health)

	api := router.Group("/api")
	{
		api.POST("/todos", c.TodoHandler.CreateTodo)
		api.PUT("/todos", c.TodoHandler.UpdateTodo)
		api.GET("/todos", c.TodoHandler.GetTodos)
		api.GET("/todos/:userId", c.TodoHandler.GetTodosByUser)
		api.GET("/todo/:id", c.TodoHandler.GetTodoByID)
		api.DELETE("/todo/:id", c.TodoHandler.DeleteTodo)

		api.GET("/user/:id", c.UserHandler.GetUserByID)

		api.POST("/login", c.AuthHandler.Login)
	}

	return router
}

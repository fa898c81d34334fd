package http

import (
	"github.com/labstack/echo/v4"
)

// Register wires the API routes. The identity middleware only guards task
// routes: auth endpoints must stay reachable without a token, and task routes
// accept anonymous actors by design.
func Register(e *echo.Echo, h *Handler, ah *AuthHandler, identity echo.MiddlewareFunc, limiter echo.MiddlewareFunc) {
	e.Use(limiter)

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", ah.Register)
	authGroup.POST("/login", ah.Login)

	tasks := e.Group("/api/tasks", identity)
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.PUT("/:id/assignee", h.UpdateTaskAssignee)
	tasks.PUT("/:id/status", h.UpdateTaskStatus)
	tasks.DELETE("/:id", h.DeleteTask)
}

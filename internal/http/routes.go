package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "tasktracker.com/tasktracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, jwtSecret []byte) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/stats/summary", h.TaskStats)
	api.GET("/tasks/:id", h.GetTask)
	api.POST("/tasks", h.CreateTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	authed := api.Group("", middleware.RequireAuth(jwtSecret))
	authed.GET("/auth/profile", h.Profile)
	authed.POST("/appointments", h.CreateAppointment)
	authed.GET("/appointments", h.ListAppointments)
	authed.GET("/appointments/:id", h.GetAppointment)
	authed.PUT("/appointments/:id", h.UpdateAppointment)
	authed.DELETE("/appointments/:id", h.CancelAppointment)
	authed.GET("/dashboard/stats", h.DashboardStats)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tasktracker.com/tasktracker/internal/errors"
	"tasktracker.com/tasktracker/internal/services"
)

type Handler struct {
	tasks        *services.TaskService
	auth         *services.AuthService
	appointments *services.AppointmentService
}

func NewHandler(
	tasks *services.TaskService,
	auth *services.AuthService,
	appointments *services.AppointmentService,
) *Handler {
	return &Handler{
		tasks:        tasks,
		auth:         auth,
		appointments: appointments,
	}
}

// respondError keeps the wire contract: application errors surface as
// {error} with their own status, anything unexpected becomes a 500 with
// {error, message}.
func respondError(c echo.Context, err error, fallback string) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return c.JSON(apperrors.StatusCode(err), echo.Map{"error": ex.Message})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   fallback,
		"message": err.Error(),
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.tasks.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.tasks.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}

	task, err := h.tasks.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err, "Failed to create task")
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}

	task, err := h.tasks.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return respondError(c, err, "Failed to update task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.tasks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, "Failed to delete task")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

func (h *Handler) TaskStats(c echo.Context) error {
	stats, err := h.tasks.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch statistics")
	}
	return c.JSON(http.StatusOK, stats)
}

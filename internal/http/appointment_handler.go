package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "tasktracker.com/tasktracker/internal/http/middlewares"
	"tasktracker.com/tasktracker/internal/http/validators"
)

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}
	if err := validators.ValidateCreateAppointmentRequest(req.DoctorName, req.Department, req.Date, req.Time, req.Symptoms); err != nil {
		return err
	}

	apt, err := h.appointments.Create(c.Request().Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		return respondError(c, err, "Error creating appointment")
	}
	return c.JSON(http.StatusCreated, apt)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	apts, err := h.appointments.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Error fetching appointments")
	}
	return c.JSON(http.StatusOK, apts)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	apt, err := h.appointments.Get(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Error fetching appointment")
	}
	return c.JSON(http.StatusOK, apt)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	var req UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}

	apt, err := h.appointments.Update(c.Request().Context(), c.Param("id"), middleware.UserID(c), req.toInput())
	if err != nil {
		return respondError(c, err, "Error updating appointment")
	}
	return c.JSON(http.StatusOK, apt)
}

// CancelAppointment handles DELETE but never removes the record; the
// status flips to cancelled.
func (h *Handler) CancelAppointment(c echo.Context) error {
	apt, err := h.appointments.Cancel(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Error cancelling appointment")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Appointment cancelled",
		"appointment": apt,
	})
}

func (h *Handler) DashboardStats(c echo.Context) error {
	stats, err := h.appointments.DashboardStats(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Error fetching stats")
	}
	return c.JSON(http.StatusOK, stats)
}

package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func ValidateCreateAppointmentRequest(doctorName, department, date, timeOfDay, symptoms string) error {
	if strings.TrimSpace(doctorName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctor name is required")
	}
	if strings.TrimSpace(department) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "department is required")
	}
	if strings.TrimSpace(date) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "appointment date is required")
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "appointment time is required")
	}
	if strings.TrimSpace(symptoms) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "symptoms are required")
	}
	return nil
}

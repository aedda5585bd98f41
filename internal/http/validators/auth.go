package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const minPasswordLength = 8

func ValidateRegisterRequest(fullName, email, password string) error {
	if strings.TrimSpace(fullName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "full name is required")
	}
	if !strings.Contains(email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	if len(password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}
	return nil
}

func ValidateLoginRequest(email, password string) error {
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	return nil
}

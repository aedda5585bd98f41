package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "tasktracker.com/tasktracker/internal/http/middlewares"
	"tasktracker.com/tasktracker/internal/http/validators"
	"tasktracker.com/tasktracker/internal/services"
)

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}
	if err := validators.ValidateRegisterRequest(req.FullName, req.Email, req.Password); err != nil {
		return err
	}

	user, token, err := h.auth.Register(c.Request().Context(), services.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return respondError(c, err, "Registration failed")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON payload"})
	}
	if err := validators.ValidateLoginRequest(req.Email, req.Password); err != nil {
		return err
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Login failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) Profile(c echo.Context) error {
	user, err := h.auth.Profile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Error fetching profile")
	}
	return c.JSON(http.StatusOK, user)
}

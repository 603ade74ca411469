package handler

import (
	"log/slog"
	"net/http"

	"juantap/internal/delivery/http/response"
	"juantap/internal/domain/repository"
	"juantap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for account and profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *ProfileHandler) Register(c echo.Context) error {
	var input repository.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Account registered successfully")
}

// Login handles the login request.
func (h *ProfileHandler) Login(c echo.Context) error {
	var creds repository.Credentials
	if err := c.Bind(&creds); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := h.uc.Login(c.Request().Context(), creds); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Login successful")
}

// Logout handles the logout request.
func (h *ProfileHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the authenticated user's normalized profile.
func (h *ProfileHandler) Me(c echo.Context) error {
	profile, err := h.uc.CurrentUser(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// Card renders the user's public profile card with the applied template.
func (h *ProfileHandler) Card(c echo.Context) error {
	card, err := h.uc.PublicCard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Card rendered successfully")
}

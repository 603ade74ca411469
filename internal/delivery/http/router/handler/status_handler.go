package handler

import (
	"log/slog"
	"net/http"

	"juantap/internal/delivery/http/response"
	"juantap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatusHandler exposes the template status transitions.
type StatusHandler struct {
	uc     usecase.StatusUsecase
	logger *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(uc usecase.StatusUsecase, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStatus returns the current status for one template.
func (h *StatusHandler) GetStatus(c echo.Context) error {
	status := h.uc.GetStatus(c.Request().Context(), c.Param("slug"))

	return response.Success(c, http.StatusOK, status, "Status retrieved successfully")
}

// Save handles saving a template to the user's account.
func (h *StatusHandler) Save(c echo.Context) error {
	result, err := h.uc.SaveTemplate(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Template saved")
}

// Unsave handles removing a template from the saved list.
func (h *StatusHandler) Unsave(c echo.Context) error {
	result, err := h.uc.UnsaveTemplate(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Template removed from saved"
	if result.Warning != "" {
		message = result.Warning
	}

	return response.Success(c, http.StatusOK, result, message)
}

// Use handles applying a template to the public profile.
func (h *StatusHandler) Use(c echo.Context) error {
	result, err := h.uc.MarkUsed(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Template applied to profile")
}

// Unuse handles removing a template from the public profile.
func (h *StatusHandler) Unuse(c echo.Context) error {
	result, err := h.uc.MarkUnused(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Template removed from profile")
}

// Reconcile forces a synchronous reconciliation against the upstream.
func (h *StatusHandler) Reconcile(c echo.Context) error {
	if err := h.uc.Reconcile(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Statuses reconciled")
}

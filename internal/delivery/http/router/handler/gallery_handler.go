// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"juantap/internal/delivery/http/response"
	"juantap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GalleryHandler holds dependencies for the template gallery handlers.
type GalleryHandler struct {
	uc     usecase.GalleryUsecase
	logger *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler, injected by Fx.
func NewGalleryHandler(uc usecase.GalleryUsecase, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Browse handles the gallery listing request, filtered by the free-text
// query parameter.
func (h *GalleryHandler) Browse(c echo.Context) error {
	view, err := h.uc.BrowseGallery(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Gallery retrieved successfully")
}

// Detail handles the template detail request.
func (h *GalleryHandler) Detail(c echo.Context) error {
	detail, err := h.uc.TemplateDetail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Template retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

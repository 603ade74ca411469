package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"juantap/internal/delivery/http/response"
	"juantap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler serves the profile share artifacts.
type ShareHandler struct {
	uc     usecase.ShareUsecase
	logger *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(uc usecase.ShareUsecase, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProfileURL returns the user's public profile URL, or a disabled marker
// when the account has no username yet.
func (h *ShareHandler) ProfileURL(c echo.Context) error {
	username := c.QueryParam("username")
	url, ok := h.uc.BuildProfileURL(username)

	return response.Success(c, http.StatusOK, map[string]any{
		"url":     url,
		"enabled": ok,
	}, "Profile URL built")
}

// TemplateURL returns the shareable catalog URL for a template.
func (h *ShareHandler) TemplateURL(c echo.Context) error {
	url := h.uc.BuildTemplateURL(c.Param("slug"))

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Template URL built")
}

// QR streams the profile QR code as an inline PNG.
func (h *ShareHandler) QR(c echo.Context) error {
	artifact, err := h.uc.ProfileQR(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, artifact.MIME, artifact.Data)
}

// QRDownload streams the profile QR code as a JPEG attachment.
func (h *ShareHandler) QRDownload(c echo.Context) error {
	artifact, err := h.uc.ProfileQRDownload(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	setAttachment(c, artifact.Filename)

	return c.Blob(http.StatusOK, artifact.MIME, artifact.Data)
}

// VCard streams the profile contact card as a vCard attachment.
func (h *ShareHandler) VCard(c echo.Context) error {
	artifact, err := h.uc.ContactCard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	setAttachment(c, artifact.Filename)

	return c.Blob(http.StatusOK, artifact.MIME, artifact.Data)
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
}

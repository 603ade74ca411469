package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"juantap/internal/delivery/http/response"
	"juantap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin catalog and payment handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListTemplates returns the catalog for the admin table, optionally
// including hidden entries.
func (h *AdminHandler) ListTemplates(c echo.Context) error {
	includeHidden := c.QueryParam("includeHidden") == "true"

	templates, err := h.uc.ListTemplates(c.Request().Context(), includeHidden)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, templates, "Templates retrieved successfully")
}

// CreateTemplate handles the template creation form.
func (h *AdminHandler) CreateTemplate(c echo.Context) error {
	var input usecase.TemplateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}

	template, err := h.uc.CreateTemplate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, template, "Template created successfully")
}

// UpdateTemplate handles the template edit form.
func (h *AdminHandler) UpdateTemplate(c echo.Context) error {
	var input usecase.TemplateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}

	template, err := h.uc.UpdateTemplate(c.Request().Context(), c.Param("slug"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, template, "Template updated successfully")
}

// ListPayments returns premium payments for review.
func (h *AdminHandler) ListPayments(c echo.Context) error {
	payments, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// ApprovePayment approves a pending payment.
func (h *AdminHandler) ApprovePayment(c echo.Context) error {
	paymentID, err := h.paymentID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment id")
	}

	if err := h.uc.ApprovePayment(c.Request().Context(), paymentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment approved")
}

// DisapprovePayment rejects a pending payment.
func (h *AdminHandler) DisapprovePayment(c echo.Context) error {
	paymentID, err := h.paymentID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment id")
	}

	if err := h.uc.DisapprovePayment(c.Request().Context(), paymentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment disapproved")
}

func (h *AdminHandler) paymentID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

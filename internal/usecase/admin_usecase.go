package usecase

import (
	"context"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/repository"
)

// TemplateInput carries the admin template form. Price is not part of the
// input: it is derived from original price and discount before submission.
type TemplateInput struct {
	Slug          string                  `json:"slug"`
	Name          string                  `json:"name" validate:"required"`
	Description   string                  `json:"description"`
	Category      entity.TemplateCategory `json:"category" validate:"required,oneof=free premium"`
	OriginalPrice float64                 `json:"original_price" validate:"gte=0"`
	Discount      float64                 `json:"discount" validate:"gte=0,lte=100"`
	Colors        entity.ColorScheme      `json:"colors"`
	Fonts         entity.FontSet          `json:"fonts"`
	Layout        entity.Layout           `json:"layout"`
	Tags          []string                `json:"tags"`
}

// AdminUsecase covers catalog management and payment review. Every method
// requires an administrator session.
type AdminUsecase interface {
	// ListTemplates retrieves the catalog, optionally with hidden entries.
	ListTemplates(ctx context.Context, includeHidden bool) ([]*entity.Template, error)

	// CreateTemplate builds a template from the form input and submits it to
	// the catalog. A missing slug is generated from the name, and the derived
	// price is recomputed before submission.
	CreateTemplate(ctx context.Context, input TemplateInput) (*entity.Template, error)

	// UpdateTemplate applies the form input to an existing template. The
	// slug path parameter is the original, immutable identifier.
	UpdateTemplate(ctx context.Context, slug string, input TemplateInput) (*entity.Template, error)

	// ListPayments retrieves premium payments for review.
	ListPayments(ctx context.Context) ([]*repository.Payment, error)

	// ApprovePayment approves a pending payment.
	ApprovePayment(ctx context.Context, paymentID int64) error

	// DisapprovePayment rejects a pending payment.
	DisapprovePayment(ctx context.Context, paymentID int64) error
}

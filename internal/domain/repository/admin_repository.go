package repository

import (
	"context"
	"time"

	"juantap/internal/domain/entity"
)

// Payment is an admin-visible premium template purchase awaiting review.
type Payment struct {
	ID         int64     `json:"id"`
	UserName   string    `json:"user_name"`
	Template   string    `json:"template"`
	Amount     float64   `json:"amount"`
	Reference  string    `json:"reference"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminRepository covers the admin-only catalog and payment endpoints.
type AdminRepository interface {
	// ListAllTemplates retrieves the catalog including hidden entries.
	ListAllTemplates(ctx context.Context, includeHidden bool) ([]*entity.Template, error)

	// CreateTemplate adds a template to the catalog.
	CreateTemplate(ctx context.Context, template *entity.Template) error

	// UpdateTemplate replaces a template identified by its slug.
	UpdateTemplate(ctx context.Context, slug string, template *entity.Template) error

	// ListPayments retrieves pending and processed premium payments.
	ListPayments(ctx context.Context) ([]*Payment, error)

	// ApprovePayment approves a payment, unlocking the template for the buyer.
	ApprovePayment(ctx context.Context, paymentID int64) error

	// DisapprovePayment rejects a payment.
	DisapprovePayment(ctx context.Context, paymentID int64) error
}

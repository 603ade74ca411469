package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/repository"
	"juantap/internal/errors"
)

type adminRepository struct {
	client *Client
}

// NewAdminRepository creates the admin catalog and payment client.
func NewAdminRepository(client *Client) repository.AdminRepository {
	return &adminRepository{client: client}
}

// ListAllTemplates retrieves the catalog including hidden entries
// (GET /admin/templates?hidden=bool).
func (r *adminRepository) ListAllTemplates(ctx context.Context, includeHidden bool) ([]*entity.Template, error) {
	path := "/admin/templates"
	if includeHidden {
		path += "?hidden=true"
	}

	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	templates, err := decodeList[*entity.Template](raw, "templates")
	if err != nil {
		return nil, errors.Wrap(err, "list admin templates")
	}

	return templates, nil
}

// CreateTemplate adds a template to the catalog (POST /admin/templates).
func (r *adminRepository) CreateTemplate(ctx context.Context, template *entity.Template) error {
	return r.client.do(ctx, http.MethodPost, "/admin/templates", template, nil)
}

// UpdateTemplate replaces a template (PUT /admin/templates/{slug}).
func (r *adminRepository) UpdateTemplate(ctx context.Context, slug string, template *entity.Template) error {
	return r.client.do(ctx, http.MethodPut, "/admin/templates/"+slug, template, nil)
}

// ListPayments retrieves premium payments (GET /admin/payments).
func (r *adminRepository) ListPayments(ctx context.Context) ([]*repository.Payment, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, "/admin/payments", nil, &raw); err != nil {
		return nil, err
	}

	payments, err := decodeList[*repository.Payment](raw, "payments")
	if err != nil {
		return nil, errors.Wrap(err, "list payments")
	}

	return payments, nil
}

// ApprovePayment approves a payment (POST /admin/payments/{id}/approve).
func (r *adminRepository) ApprovePayment(ctx context.Context, paymentID int64) error {
	return r.client.do(ctx, http.MethodPost, "/admin/payments/"+strconv.FormatInt(paymentID, 10)+"/approve", nil, nil)
}

// DisapprovePayment rejects a payment (POST /admin/payments/{id}/disapprove).
func (r *adminRepository) DisapprovePayment(ctx context.Context, paymentID int64) error {
	return r.client.do(ctx, http.MethodPost, "/admin/payments/"+strconv.FormatInt(paymentID, 10)+"/disapprove", nil, nil)
}

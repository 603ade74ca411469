package api

import (
	"context"
	"encoding/json"
	"net/http"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/repository"
	"juantap/internal/errors"
)

type templateRepository struct {
	client *Client
}

// NewTemplateRepository creates the catalog reader backed by the upstream API.
func NewTemplateRepository(client *Client) repository.TemplateRepository {
	return &templateRepository{client: client}
}

// ListTemplates retrieves the full catalog (GET /templates).
func (r *templateRepository) ListTemplates(ctx context.Context) ([]*entity.Template, error) {
	return r.list(ctx, "/templates")
}

// FindTemplateBySlug retrieves a single template (GET /templates/{slug}).
func (r *templateRepository) FindTemplateBySlug(ctx context.Context, slug string) (*entity.Template, error) {
	var template entity.Template
	if err := r.client.do(ctx, http.MethodGet, "/templates/"+slug, nil, &template); err != nil {
		return nil, err
	}

	return &template, nil
}

// ListSavedTemplates retrieves the user's saved templates (GET /templates/saved).
func (r *templateRepository) ListSavedTemplates(ctx context.Context) ([]*entity.Template, error) {
	return r.list(ctx, "/templates/saved")
}

// ListUsedTemplates retrieves the user's applied templates (GET /templates/used).
func (r *templateRepository) ListUsedTemplates(ctx context.Context) ([]*entity.Template, error) {
	return r.list(ctx, "/templates/used")
}

func (r *templateRepository) list(ctx context.Context, path string) ([]*entity.Template, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	templates, err := decodeList[*entity.Template](raw, "templates")
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", path)
	}

	return templates, nil
}

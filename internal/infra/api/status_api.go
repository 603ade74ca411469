package api

import (
	"context"
	"net/http"

	"juantap/internal/domain/repository"
)

type statusRepository struct {
	client *Client
}

// NewStatusRepository creates the status transition writer backed by the
// upstream API. The slug is the canonical path parameter throughout.
func NewStatusRepository(client *Client) repository.StatusRepository {
	return &statusRepository{client: client}
}

// SaveTemplate marks the template saved (POST /templates/saved/{slug}).
func (r *statusRepository) SaveTemplate(ctx context.Context, slug string) error {
	return r.client.do(ctx, http.MethodPost, "/templates/saved/"+slug, nil, nil)
}

// UnsaveTemplate removes the template from the saved list
// (DELETE /templates/saved/{slug}).
func (r *statusRepository) UnsaveTemplate(ctx context.Context, slug string) error {
	return r.client.do(ctx, http.MethodDelete, "/templates/saved/"+slug, nil, nil)
}

// MarkTemplateUsed applies the template to the public profile
// (POST /templates/used/{slug}).
func (r *statusRepository) MarkTemplateUsed(ctx context.Context, slug string) error {
	return r.client.do(ctx, http.MethodPost, "/templates/used/"+slug, nil, nil)
}

// MarkTemplateUnused removes the template from the public profile
// (DELETE /templates/used/{slug}).
func (r *statusRepository) MarkTemplateUnused(ctx context.Context, slug string) error {
	return r.client.do(ctx, http.MethodDelete, "/templates/used/"+slug, nil, nil)
}

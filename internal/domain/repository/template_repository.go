// Package repository defines the interfaces over the upstream JuanTap API.
package repository

import (
	"context"

	"juantap/internal/domain/entity"
	"juantap/internal/errors"
)

// Domain-specific errors for upstream lookups.
var (
	// ErrTemplateNotFound is returned when a template slug is unknown upstream.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrUnauthorized is returned when the session token is missing or rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream is returned for any other non-2xx or transport failure.
	ErrUpstream = errors.New("upstream request failed")
)

// TemplateRepository reads the template catalog.
type TemplateRepository interface {
	// ListTemplates retrieves the full catalog.
	ListTemplates(ctx context.Context) ([]*entity.Template, error)

	// FindTemplateBySlug retrieves a single template by its slug, the stable
	// public-facing key.
	FindTemplateBySlug(ctx context.Context, slug string) (*entity.Template, error)

	// ListSavedTemplates retrieves the authenticated user's saved templates.
	ListSavedTemplates(ctx context.Context) ([]*entity.Template, error)

	// ListUsedTemplates retrieves the templates currently applied to the
	// authenticated user's public profile.
	ListUsedTemplates(ctx context.Context) ([]*entity.Template, error)
}

package repository

import "context"

// StatusRepository issues the four status transitions against the upstream.
// The slug is the canonical path parameter for every operation. Each call
// maps to exactly one network request; callers own coalescing and state.
type StatusRepository interface {
	// SaveTemplate marks the template saved (POST /templates/saved/{slug}).
	// Saving an already-saved template is a server-side no-op.
	SaveTemplate(ctx context.Context, slug string) error

	// UnsaveTemplate removes the template from the saved list
	// (DELETE /templates/saved/{slug}).
	UnsaveTemplate(ctx context.Context, slug string) error

	// MarkTemplateUsed applies the template to the public profile
	// (POST /templates/used/{slug}).
	MarkTemplateUsed(ctx context.Context, slug string) error

	// MarkTemplateUnused removes the template from the public profile
	// (DELETE /templates/used/{slug}).
	MarkTemplateUnused(ctx context.Context, slug string) error
}

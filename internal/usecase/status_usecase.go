package usecase

import (
	"context"

	"juantap/internal/domain/entity"
)

// TransitionResult is the outcome of a status operation. Warning carries the
// informational message for transitions that were refused client-side as
// no-ops (e.g. unsaving a bought template); it is not an error.
type TransitionResult struct {
	Status  entity.TemplateStatus `json:"status"`
	Warning string                `json:"warning,omitempty"`
}

// StatusUsecase is the per-template status synchronizer. Mutations against
// the same template are serialized, duplicate concurrent calls of one
// operation are coalesced into a single upstream request, and every
// transition is confirmed by the upstream before the cache commits it; on
// failure the last confirmed state stands.
type StatusUsecase interface {
	// GetStatus returns the cached status immediately. When the entry is
	// stale a background reconciliation against the upstream is started;
	// on mismatch the server state wins.
	GetStatus(ctx context.Context, slug string) entity.TemplateStatus

	// SaveTemplate saves the template to the user's account. Idempotent;
	// never downgrades a pending or bought acquisition.
	SaveTemplate(ctx context.Context, slug string) (TransitionResult, error)

	// UnsaveTemplate removes a saved template. Legal only from saved or
	// free; for bought/pending templates it is a warning no-op without any
	// network call.
	UnsaveTemplate(ctx context.Context, slug string) (TransitionResult, error)

	// MarkUsed applies the template to the public profile. Legal only when
	// the template is saved or bought; rejected client-side otherwise.
	MarkUsed(ctx context.Context, slug string) (TransitionResult, error)

	// MarkUnused removes the template from the public profile under the
	// same gating as MarkUsed.
	MarkUnused(ctx context.Context, slug string) (TransitionResult, error)

	// Reconcile forces a synchronous reconciliation of the whole cache
	// against the upstream saved/used listings.
	Reconcile(ctx context.Context) error
}

package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"juantap/config"
	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/repository"
	"juantap/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const defaultRefreshInterval = 30 * time.Second

// warnUnsaveLocked is surfaced when an unsave is refused because the
// template was bought or its purchase is pending.
const warnUnsaveLocked = "Purchased templates stay in your account and cannot be unsaved"

// statusEntry is one cached per-template status. generation increments on
// every confirmed mutation; reconciliation results computed against an older
// generation are discarded as stale.
type statusEntry struct {
	status      entity.TemplateStatus
	generation  uint64
	refreshedAt time.Time
}

type statusService struct {
	statusRepo      repository.StatusRepository
	templateRepo    repository.TemplateRepository
	logger          *slog.Logger
	refreshInterval time.Duration

	mu    sync.RWMutex
	cache map[string]*statusEntry

	// flight coalesces duplicate concurrent calls per (operation, slug);
	// slugLocks serializes different mutations against the same template.
	flight    singleflight.Group
	lockMu    sync.Mutex
	slugLocks map[string]*sync.Mutex
}

// StatusServiceParams holds dependencies for StatusService, injected by Fx.
type StatusServiceParams struct {
	fx.In

	StatusRepo   repository.StatusRepository
	TemplateRepo repository.TemplateRepository
	Logger       *slog.Logger
	Config       *config.Config
}

// NewStatusService creates the template status synchronizer.
func NewStatusService(params StatusServiceParams) usecase.StatusUsecase {
	interval := defaultRefreshInterval
	if params.Config != nil && params.Config.Status != nil && params.Config.Status.RefreshInterval > 0 {
		interval = params.Config.Status.RefreshInterval
	}

	return &statusService{
		statusRepo:      params.StatusRepo,
		templateRepo:    params.TemplateRepo,
		logger:          params.Logger,
		refreshInterval: interval,
		cache:           make(map[string]*statusEntry),
		slugLocks:       make(map[string]*sync.Mutex),
	}
}

// GetStatus returns the cached status immediately and schedules a background
// reconciliation when the entry is stale. Unknown templates read as
// free/unused until the upstream says otherwise.
func (s *statusService) GetStatus(ctx context.Context, slug string) entity.TemplateStatus {
	s.mu.RLock()
	entry, ok := s.cache[slug]
	var status entity.TemplateStatus
	var stale bool
	if ok {
		status = entry.status
		stale = time.Since(entry.refreshedAt) > s.refreshInterval
	}
	s.mu.RUnlock()

	if !ok {
		status = entity.NewTemplateStatus(slug)
		stale = true
	}

	if stale {
		go func() {
			// Detached from the request context; reconciliation outlives it.
			if err := s.Reconcile(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("background status reconciliation failed", slog.Any("error", err))
			}
		}()
	}

	return status
}

// SaveTemplate saves the template to the user's account. A pending or bought
// acquisition is never downgraded, and no request is made for it.
func (s *statusService) SaveTemplate(ctx context.Context, slug string) (usecase.TransitionResult, error) {
	return s.mutate(ctx, "save", slug, func(ctx context.Context, current entity.TemplateStatus) (entity.TemplateStatus, string, bool, error) {
		if current.Acquisition == entity.AcquisitionPending || current.Acquisition == entity.AcquisitionBought {
			return current, "", false, nil
		}

		if err := s.statusRepo.SaveTemplate(ctx, slug); err != nil {
			return current, "", false, err
		}
		current.Acquisition = entity.AcquisitionSaved

		return current, "", true, nil
	})
}

// UnsaveTemplate removes a saved template. Refusal for bought/pending
// templates is a warning no-op, not an error, and issues no request.
func (s *statusService) UnsaveTemplate(ctx context.Context, slug string) (usecase.TransitionResult, error) {
	return s.mutate(ctx, "unsave", slug, func(ctx context.Context, current entity.TemplateStatus) (entity.TemplateStatus, string, bool, error) {
		if !current.CanUnsave() {
			return current, warnUnsaveLocked, false, nil
		}

		if err := s.statusRepo.UnsaveTemplate(ctx, slug); err != nil {
			return current, "", false, err
		}
		current.Acquisition = entity.AcquisitionFree
		current.Usage = entity.UsageUnused

		return current, "", true, nil
	})
}

// MarkUsed applies the template to the public profile. Unacquired templates
// are rejected before any network call.
func (s *statusService) MarkUsed(ctx context.Context, slug string) (usecase.TransitionResult, error) {
	return s.mutate(ctx, "use", slug, func(ctx context.Context, current entity.TemplateStatus) (entity.TemplateStatus, string, bool, error) {
		if !current.CanToggleUsage() {
			return current, "", false, domainerrors.ErrNotAcquired
		}

		if err := s.statusRepo.MarkTemplateUsed(ctx, slug); err != nil {
			return current, "", false, err
		}
		current.Usage = entity.UsageUsed

		return current, "", true, nil
	})
}

// MarkUnused removes the template from the public profile under the same
// gating as MarkUsed.
func (s *statusService) MarkUnused(ctx context.Context, slug string) (usecase.TransitionResult, error) {
	return s.mutate(ctx, "unuse", slug, func(ctx context.Context, current entity.TemplateStatus) (entity.TemplateStatus, string, bool, error) {
		if !current.CanToggleUsage() {
			return current, "", false, domainerrors.ErrNotAcquired
		}

		if err := s.statusRepo.MarkTemplateUnused(ctx, slug); err != nil {
			return current, "", false, err
		}
		current.Usage = entity.UsageUnused

		return current, "", true, nil
	})
}

// mutate runs one status transition. Duplicate concurrent calls of the same
// operation share a single flight (and therefore a single upstream request);
// distinct operations on the same template serialize on the per-slug lock so
// a stale response can never overwrite a newer confirmed state.
func (s *statusService) mutate(
	ctx context.Context,
	op, slug string,
	fn func(ctx context.Context, current entity.TemplateStatus) (entity.TemplateStatus, string, bool, error),
) (usecase.TransitionResult, error) {
	result, err, _ := s.flight.Do(op+":"+slug, func() (any, error) {
		lock := s.slugLock(slug)
		lock.Lock()
		defer lock.Unlock()

		current := s.confirmed(slug)
		next, warning, confirmed, err := fn(ctx, current)
		if err != nil {
			// The transition failed upstream; the last confirmed state stands.
			return usecase.TransitionResult{Status: current}, err
		}
		if confirmed {
			s.commit(slug, next)
		}

		return usecase.TransitionResult{Status: next, Warning: warning}, nil
	})

	transition, ok := result.(usecase.TransitionResult)
	if !ok {
		transition = usecase.TransitionResult{Status: s.confirmed(slug)}
	}

	return transition, err
}

// Reconcile replaces cached state with the upstream's saved/used listings.
// Entries mutated while the listings were in flight keep their newer local
// state; everything else takes the server's view.
func (s *statusService) Reconcile(ctx context.Context) error {
	_, err, _ := s.flight.Do("reconcile", func() (any, error) {
		generations := s.snapshotGenerations()

		saved, err := s.templateRepo.ListSavedTemplates(ctx)
		if err != nil {
			return nil, err
		}
		used, err := s.templateRepo.ListUsedTemplates(ctx)
		if err != nil {
			return nil, err
		}

		s.apply(generations, saved, used)

		return nil, nil
	})

	return err
}

func (s *statusService) apply(generations map[string]uint64, saved, used []*entity.Template) {
	now := time.Now()

	serverState := make(map[string]entity.TemplateStatus)
	for _, template := range saved {
		status := entity.NewTemplateStatus(template.Slug)
		status.Acquisition = entity.AcquisitionSaved
		if template.Status != "" {
			status.Acquisition = template.Status
		}
		serverState[template.Slug] = status
	}
	for _, template := range used {
		status, ok := serverState[template.Slug]
		if !ok {
			status = entity.NewTemplateStatus(template.Slug)
			status.Acquisition = entity.AcquisitionSaved
		}
		status.Usage = entity.UsageUsed
		serverState[template.Slug] = status
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for slug, entry := range s.cache {
		if entry.generation != generations[slug] {
			// A mutation confirmed after the snapshot; its state is newer
			// than the listings we just fetched.
			continue
		}
		if status, ok := serverState[slug]; ok {
			status.ConfirmedAt = now
			entry.status = status
		} else {
			entry.status = entity.NewTemplateStatus(slug)
			entry.status.ConfirmedAt = now
		}
		entry.refreshedAt = now
		delete(serverState, slug)
	}
	for slug, status := range serverState {
		status.ConfirmedAt = now
		s.cache[slug] = &statusEntry{status: status, refreshedAt: now}
	}
}

func (s *statusService) snapshotGenerations() map[string]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	generations := make(map[string]uint64, len(s.cache))
	for slug, entry := range s.cache {
		generations[slug] = entry.generation
	}

	return generations
}

func (s *statusService) confirmed(slug string) entity.TemplateStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.cache[slug]; ok {
		return entry.status
	}

	return entity.NewTemplateStatus(slug)
}

func (s *statusService) commit(slug string, status entity.TemplateStatus) {
	status.ConfirmedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[slug]
	if !ok {
		entry = &statusEntry{}
		s.cache[slug] = entry
	}
	entry.status = status
	entry.generation++
	entry.refreshedAt = status.ConfirmedAt

	// Applying a template unapplies every other one.
	if status.Usage == entity.UsageUsed {
		for otherSlug, other := range s.cache {
			if otherSlug == slug {
				continue
			}
			if other.status.Usage == entity.UsageUsed {
				other.status.Usage = entity.UsageUnused
				other.generation++
			}
		}
	}
}

func (s *statusService) slugLock(slug string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	lock, ok := s.slugLocks[slug]
	if !ok {
		lock = &sync.Mutex{}
		s.slugLocks[slug] = lock
	}

	return lock
}

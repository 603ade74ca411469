// Package impl provides implementations for the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/repository"
	"juantap/internal/domain/service"
	"juantap/internal/errors"
	"juantap/internal/usecase"

	"go.uber.org/fx"
)

type galleryService struct {
	templateRepo repository.TemplateRepository
	profileRepo  repository.ProfileRepository
	renderer     service.CardRenderer
	session      service.Session
	status       usecase.StatusUsecase
	logger       *slog.Logger
}

// GalleryServiceParams holds dependencies for GalleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	TemplateRepo repository.TemplateRepository
	ProfileRepo  repository.ProfileRepository
	Renderer     service.CardRenderer
	Session      service.Session
	Status       usecase.StatusUsecase
	Logger       *slog.Logger
}

// NewGalleryService creates the gallery usecase.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	return &galleryService{
		templateRepo: params.TemplateRepo,
		profileRepo:  params.ProfileRepo,
		renderer:     params.Renderer,
		session:      params.Session,
		status:       params.Status,
		logger:       params.Logger,
	}
}

// BrowseGallery fetches the catalog once and partitions it into free and
// premium sections matching the query. The fetched slice is never reordered
// or mutated; both sections are fresh slices over the same templates.
func (g *galleryService) BrowseGallery(ctx context.Context, query string) (*usecase.GalleryView, error) {
	templates, err := g.templateRepo.ListTemplates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list templates")
	}

	profile := g.previewProfile(ctx)

	view := &usecase.GalleryView{
		Query:   query,
		Free:    make([]*usecase.GalleryItem, 0, len(templates)),
		Premium: make([]*usecase.GalleryItem, 0),
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	for _, template := range templates {
		if needle != "" && !strings.Contains(strings.ToLower(template.Name), needle) {
			continue
		}

		item := &usecase.GalleryItem{
			Template: template,
			Card:     g.renderer.Render(template, profile),
		}
		if template.IsPremium() {
			view.Premium = append(view.Premium, item)
		} else {
			view.Free = append(view.Free, item)
		}
	}

	return view, nil
}

// TemplateDetail resolves one template by slug together with its preview and
// the viewer's current status for it.
func (g *galleryService) TemplateDetail(ctx context.Context, slug string) (*usecase.TemplateDetail, error) {
	template, err := g.templateRepo.FindTemplateBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrTemplateNotFound
		}

		return nil, errors.Wrapf(err, "find template %s", slug)
	}

	return &usecase.TemplateDetail{
		Template: template,
		Card:     g.renderer.Render(template, g.previewProfile(ctx)),
		Status:   g.status.GetStatus(ctx, slug),
	}, nil
}

// previewProfile returns the authenticated user's profile for live previews,
// or nil for the anonymous placeholder card. A profile fetch failure only
// degrades the preview; browsing stays available.
func (g *galleryService) previewProfile(ctx context.Context) *entity.UserProfile {
	if !g.session.Authenticated() {
		return nil
	}

	profile, err := g.profileRepo.CurrentUser(ctx)
	if err != nil {
		g.logger.Warn("preview profile unavailable", slog.Any("error", err))

		return nil
	}

	return profile
}

package impl

import (
	"context"
	"log/slog"

	"juantap/internal/domain/entity"
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/repository"
	"juantap/internal/domain/service"
	"juantap/internal/errors"
	"juantap/internal/usecase"

	"go.uber.org/fx"
)

type profileService struct {
	profileRepo  repository.ProfileRepository
	templateRepo repository.TemplateRepository
	renderer     service.CardRenderer
	session      service.Session
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	TemplateRepo repository.TemplateRepository
	Renderer     service.CardRenderer
	Session      service.Session
	Logger       *slog.Logger
}

// NewProfileService creates the account and public card usecase.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:  params.ProfileRepo,
		templateRepo: params.TemplateRepo,
		renderer:     params.Renderer,
		session:      params.Session,
		logger:       params.Logger,
	}
}

// Register creates a new account upstream. Registration does not log the
// user in; the upstream issues tokens only through the login endpoint.
func (p *profileService) Register(ctx context.Context, input repository.RegisterInput) error {
	if err := p.profileRepo.Register(ctx, input); err != nil {
		return errors.Wrap(err, "register")
	}

	return nil
}

// Login exchanges credentials for a bearer token and starts the session.
func (p *profileService) Login(ctx context.Context, creds repository.Credentials) error {
	token, err := p.profileRepo.Login(ctx, creds)
	if err != nil {
		return errors.Wrap(err, "login")
	}

	if err := p.session.Start(token); err != nil {
		return errors.Wrap(err, "start session")
	}

	return nil
}

// Logout invalidates the token upstream and always clears the local session,
// even when the upstream call fails.
func (p *profileService) Logout(ctx context.Context) error {
	err := p.profileRepo.Logout(ctx)
	p.session.Clear()

	if err != nil {
		p.logger.Warn("upstream logout failed", slog.Any("error", err))
	}

	return nil
}

// CurrentUser returns the authenticated user's normalized profile.
func (p *profileService) CurrentUser(ctx context.Context) (*entity.UserProfile, error) {
	if !p.session.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := p.profileRepo.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUnauthorized) {
			p.session.Clear()

			return nil, domainerrors.ErrSessionExpired
		}

		return nil, errors.Wrap(err, "current user")
	}

	return profile, nil
}

// PublicCard renders the user's public profile with the template currently
// applied to it. With nothing applied the card uses the default layout.
func (p *profileService) PublicCard(ctx context.Context) (*entity.CardView, error) {
	profile, err := p.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	var applied *entity.Template
	used, err := p.templateRepo.ListUsedTemplates(ctx)
	if err != nil {
		// The card still renders; only the template styling degrades.
		p.logger.Warn("used templates unavailable", slog.Any("error", err))
	} else if len(used) > 0 {
		applied = used[0]
	}

	return p.renderer.Render(applied, profile), nil
}

package usecase

import (
	"context"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/repository"
)

// ProfileUsecase drives account lifecycle and the public profile page.
type ProfileUsecase interface {
	// Register creates a new account upstream.
	Register(ctx context.Context, input repository.RegisterInput) error

	// Login exchanges credentials for a session.
	Login(ctx context.Context, creds repository.Credentials) error

	// Logout invalidates and clears the session.
	Logout(ctx context.Context) error

	// CurrentUser returns the authenticated user's normalized profile.
	CurrentUser(ctx context.Context) (*entity.UserProfile, error)

	// PublicCard renders the user's public profile card with the template
	// currently applied to their profile, defaulting to the minimal-clean
	// layout when none is.
	PublicCard(ctx context.Context) (*entity.CardView, error)
}

package repository

import (
	"context"

	"juantap/internal/domain/entity"
)

// RegisterInput carries the account creation payload.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Credentials carries a login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRepository reads and mutates the authenticated user's account.
type ProfileRepository interface {
	// CurrentUser retrieves the authenticated user with profile and social
	// links, avatar URL already absolutized.
	CurrentUser(ctx context.Context) (*entity.UserProfile, error)

	// Register creates a new account.
	Register(ctx context.Context, input RegisterInput) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds Credentials) (token string, err error)

	// Logout invalidates the current token upstream.
	Logout(ctx context.Context) error
}

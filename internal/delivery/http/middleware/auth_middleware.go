package middleware

import (
	domainerrors "juantap/internal/domain/errors"
	"juantap/internal/domain/service"
	"juantap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware gates routes behind the upstream session.
type AuthMiddleware struct {
	session service.Session
	profile usecase.ProfileUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(session service.Session, profile usecase.ProfileUsecase) *AuthMiddleware {
	return &AuthMiddleware{session: session, profile: profile}
}

// Authenticate rejects requests without an active, unexpired session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.session.Authenticated() {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireAdmin allows only administrator accounts through. It must be used
// AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.profile.CurrentUser(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}
		if !user.IsAdmin {
			return domainerrors.ErrAdminOnly
		}

		return next(c)
	}
}

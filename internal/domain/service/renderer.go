// Package service defines domain service interfaces implemented by infra.
package service

import "juantap/internal/domain/entity"

// CardRenderer maps a template configuration plus an optional profile to a
// fully resolved card view. Rendering is total: missing profile data yields
// placeholders and unknown layout keys fall back to the default variant, so
// Render never fails.
type CardRenderer interface {
	Render(template *entity.Template, profile *entity.UserProfile) *entity.CardView
}

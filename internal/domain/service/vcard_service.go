package service

import "juantap/internal/domain/entity"

// VCardService serializes a profile into a downloadable vCard 3.0 contact.
type VCardService interface {
	// BuildVCard returns the vCard text block for the profile. Only visible
	// social links are included, one X-SOCIALPROFILE line each.
	BuildVCard(profile *entity.UserProfile) string
}

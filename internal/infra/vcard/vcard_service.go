// Package vcard serializes profiles into vCard 3.0 contact cards for the
// "Save Contact" export.
package vcard

import (
	"strings"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/service"
)

type vcardService struct{}

// NewVCardService creates the vCard serializer.
func NewVCardService() service.VCardService {
	return &vcardService{}
}

// BuildVCard serializes the profile into a vCard 3.0 text block. Absent
// fields serialize as empty values rather than being dropped, matching what
// phone contact importers accept, and each visible social link contributes
// one X-SOCIALPROFILE line. Social links have already been normalized to an
// array at the ingestion boundary, so the source shape (array, JSON string,
// absent) cannot differ here.
func (s *vcardService) BuildVCard(profile *entity.UserProfile) string {
	if profile == nil {
		profile = &entity.UserProfile{}
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + escape(profile.BestName()),
		"TEL;TYPE=CELL:" + escape(profile.Contact.Phone),
		"EMAIL;TYPE=INTERNET:" + escape(profile.Email),
		"URL:" + profile.Contact.Website,
		"ADR;TYPE=HOME:;;" + escape(profile.Contact.Location) + ";;;",
		"NOTE:" + escape(profile.Contact.Bio),
	}

	for _, link := range profile.VisibleSocialLinks() {
		platform := strings.ToLower(strings.TrimSpace(link.Platform))
		if platform == "" {
			platform = "social"
		}
		lines = append(lines, "X-SOCIALPROFILE;TYPE="+platform+":"+link.URL)
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// escape quotes the characters vCard 3.0 reserves in text values.
func escape(value string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"\n", "\\n",
		",", "\\,",
		";", "\\;",
	)

	return replacer.Replace(value)
}

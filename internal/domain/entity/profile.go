package entity

import (
	"encoding/json"
	"strings"
)

// UserProfile is the profile owner as this client sees them: identity fields
// plus the contact card rendered on their public page. AvatarURL is always an
// absolute URL by the time an entity exists; bare storage paths are resolved
// at the ingestion boundary.
type UserProfile struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name,omitempty"`
	Email       string      `json:"email"`
	IsAdmin     bool        `json:"is_admin"`
	AvatarURL   string      `json:"avatar_url"`
	Contact     ContactInfo `json:"profile"`
}

// ContactInfo holds the optional contact card fields. Every field may be
// empty; renderers substitute placeholders, never fail.
type ContactInfo struct {
	Bio         string       `json:"bio,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Website     string       `json:"website,omitempty"`
	Location    string       `json:"location,omitempty"`
	CoverImage  string       `json:"cover_image,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

// SocialLink is one entry of a profile's social directory. Only links with
// IsVisible set are ever rendered publicly, regardless of the active layout.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Username string `json:"username"`
	URL      string `json:"url"`
	// IsVisible arrives from the upstream as true/false or 1/0 depending on
	// the endpoint; both decode to this field.
	IsVisible FlexBool `json:"isVisible"`
}

// BestName returns the name to display for the profile owner, falling back
// through display name, name and username.
func (p *UserProfile) BestName() string {
	for _, candidate := range []string{p.DisplayName, p.Name, p.Username} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	return ""
}

// VisibleSocialLinks returns the subset of links flagged visible, preserving
// order. The result is a fresh slice; the profile is never mutated.
func (p *UserProfile) VisibleSocialLinks() []SocialLink {
	visible := make([]SocialLink, 0, len(p.Contact.SocialLinks))
	for _, link := range p.Contact.SocialLinks {
		if link.IsVisible.Bool() {
			visible = append(visible, link)
		}
	}

	return visible
}

// ParseSocialLinks is the single normalization point for the social link
// field, which different upstream endpoints deliver as a pre-parsed array, a
// JSON-encoded string, or not at all. Downstream code never re-sniffs the
// shape. Malformed input degrades to an empty list.
func ParseSocialLinks(raw json.RawMessage) []SocialLink {
	if len(raw) == 0 {
		return nil
	}

	var links []SocialLink
	if err := json.Unmarshal(raw, &links); err == nil {
		return links
	}

	// A JSON string containing an encoded array.
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &links); err != nil {
		return nil
	}

	return links
}

// FlexBool decodes JSON booleans that some upstream endpoints encode as
// 0/1 integers instead.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1", `"1"`, `"true"`:
		*b = true
	default:
		*b = false
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (b FlexBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}

	return []byte("false"), nil
}

// Bool returns the plain boolean value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

// Package render is the card rendering engine: it maps template
// configuration plus profile data onto resolved card views, one variant per
// layout key.
package render

import (
	"net/url"
	"strings"

	"juantap/internal/domain/entity"
	"juantap/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

// defaultColors is the palette substituted field by field when a template
// omits a color. A missing accent never blanks out the primary.
var defaultColors = entity.ColorScheme{
	Primary:    "#6d28d9",
	Secondary:  "#6b7280",
	Accent:     "#db2777",
	Background: "#f9fafb",
	Text:       "#111827",
}

// defaultFonts is the typography substituted when a template omits a font.
var defaultFonts = entity.FontSet{
	Heading: "Inter, sans-serif",
	Body:    "Inter, sans-serif",
}

const anonymousName = "Anonymous"

type cardRenderer struct {
	sanitizer *bluemonday.Policy
}

// NewCardRenderer creates the rendering engine. Free-text profile fields are
// stripped of markup before they reach a card.
func NewCardRenderer() service.CardRenderer {
	return &cardRenderer{sanitizer: bluemonday.StrictPolicy()}
}

// Render resolves the card view for the template and profile. It is total:
// a nil profile renders the placeholder card, unknown layouts render with the
// default variant, and missing colors or fonts fall back per field.
func (r *cardRenderer) Render(template *entity.Template, profile *entity.UserProfile) *entity.CardView {
	layout := resolveLayout(template)

	card := &entity.CardView{
		Layout: layout,
		Theme: entity.CardTheme{
			Colors: resolveColors(template),
			Fonts:  resolveFonts(template),
		},
	}
	card.Header = r.buildHeader(profile)
	card.Contact = buildContact(profile)
	card.Socials = r.buildSocials(profile)

	applyVariant(card)

	return card
}

func resolveLayout(template *entity.Template) entity.Layout {
	if template == nil {
		return entity.DefaultLayout
	}

	candidate := entity.Layout(strings.ToLower(strings.TrimSpace(string(template.Layout))))
	for _, known := range entity.Layouts() {
		if candidate == known {
			return candidate
		}
	}

	return entity.DefaultLayout
}

func resolveColors(template *entity.Template) entity.ColorScheme {
	resolved := defaultColors
	if template == nil {
		return resolved
	}

	if c := strings.TrimSpace(template.Colors.Primary); c != "" {
		resolved.Primary = c
	}
	if c := strings.TrimSpace(template.Colors.Secondary); c != "" {
		resolved.Secondary = c
	}
	if c := strings.TrimSpace(template.Colors.Accent); c != "" {
		resolved.Accent = c
	}
	if c := strings.TrimSpace(template.Colors.Background); c != "" {
		resolved.Background = c
	}
	if c := strings.TrimSpace(template.Colors.Text); c != "" {
		resolved.Text = c
	}

	return resolved
}

func resolveFonts(template *entity.Template) entity.FontSet {
	resolved := defaultFonts
	if template == nil {
		return resolved
	}

	if f := strings.TrimSpace(template.Fonts.Heading); f != "" {
		resolved.Heading = f
	}
	if f := strings.TrimSpace(template.Fonts.Body); f != "" {
		resolved.Body = f
	}

	return resolved
}

func (r *cardRenderer) buildHeader(profile *entity.UserProfile) entity.CardHeader {
	header := entity.CardHeader{
		DisplayName:       anonymousName,
		AvatarPlaceholder: true,
		CoverPlaceholder:  true,
	}
	if profile == nil {
		return header
	}

	if name := r.sanitizer.Sanitize(profile.BestName()); name != "" {
		header.DisplayName = name
	}
	header.Bio = r.sanitizer.Sanitize(profile.Contact.Bio)
	if avatar := strings.TrimSpace(profile.AvatarURL); avatar != "" {
		header.AvatarURL = avatar
		header.AvatarPlaceholder = false
	}
	if cover := strings.TrimSpace(profile.Contact.CoverImage); cover != "" {
		header.CoverURL = cover
		header.CoverPlaceholder = false
	}

	return header
}

// buildContact assembles the actionable contact rows, skipping absent fields
// entirely rather than rendering empty links.
func buildContact(profile *entity.UserProfile) []entity.ContactRow {
	if profile == nil {
		return nil
	}

	var rows []entity.ContactRow
	if email := strings.TrimSpace(profile.Email); email != "" {
		rows = append(rows, entity.ContactRow{
			Kind:  entity.ContactEmail,
			Label: email,
			Href:  "mailto:" + email,
		})
	}
	if phone := strings.TrimSpace(profile.Contact.Phone); phone != "" {
		rows = append(rows, entity.ContactRow{
			Kind:  entity.ContactPhone,
			Label: phone,
			Href:  "tel:" + phone,
		})
	}
	if website := strings.TrimSpace(profile.Contact.Website); website != "" {
		label := strings.TrimPrefix(strings.TrimPrefix(website, "https://"), "http://")
		rows = append(rows, entity.ContactRow{
			Kind:  entity.ContactWebsite,
			Label: label,
			Href:  website,
		})
	}
	if location := strings.TrimSpace(profile.Contact.Location); location != "" {
		rows = append(rows, entity.ContactRow{
			Kind:  entity.ContactLocation,
			Label: location,
			Href:  "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location),
		})
	}

	return rows
}

// buildSocials renders exactly the visible links, preserving order. The
// visibility filter is applied here, once, for every layout variant.
func (r *cardRenderer) buildSocials(profile *entity.UserProfile) []entity.SocialRow {
	if profile == nil {
		return nil
	}

	visible := profile.VisibleSocialLinks()
	rows := make([]entity.SocialRow, 0, len(visible))
	for _, link := range visible {
		label := r.sanitizer.Sanitize(link.Username)
		if label == "" {
			label = strings.TrimSpace(link.Platform)
		}
		rows = append(rows, entity.SocialRow{
			ID:       link.ID,
			Platform: link.Platform,
			Label:    label,
			URL:      link.URL,
			Icon:     IconFor(link.Platform),
		})
	}

	return rows
}

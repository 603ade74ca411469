// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"regexp"
	"strings"
)

// TemplateCategory partitions the catalog into free and premium templates.
type TemplateCategory string

const (
	CategoryFree    TemplateCategory = "free"
	CategoryPremium TemplateCategory = "premium"
)

// Layout identifies one of the closed set of card layout variants. Unknown
// values coming from the catalog are rendered with DefaultLayout.
type Layout string

const (
	LayoutMinimalClean   Layout = "minimal-clean"
	LayoutGradientModern Layout = "gradient-modern"
	LayoutClassicBlue    Layout = "classic-blue"
	LayoutNeonCyber      Layout = "neon-cyber"
	LayoutLuxuryGold     Layout = "luxury-gold"
	LayoutNatureOrganic  Layout = "nature-organic"
	LayoutRetroVintage   Layout = "retro-vintage"
	LayoutGlassMorphism  Layout = "glass-morphism"
	LayoutMinimalistPro  Layout = "minimalist-pro"

	// DefaultLayout is the variant used when a template names a layout this
	// client does not know.
	DefaultLayout = LayoutMinimalClean
)

// Layouts lists every known layout variant. The renderer registry is checked
// against this list in tests so a new constant cannot be added without a
// matching variant implementation.
func Layouts() []Layout {
	return []Layout{
		LayoutMinimalClean,
		LayoutGradientModern,
		LayoutClassicBlue,
		LayoutNeonCyber,
		LayoutLuxuryGold,
		LayoutNatureOrganic,
		LayoutRetroVintage,
		LayoutGlassMorphism,
		LayoutMinimalistPro,
	}
}

// ColorScheme is a template's declared palette. Any field may be empty; the
// renderer substitutes its default palette per field.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// FontSet is a template's declared typography.
type FontSet struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// TemplateAuthor is the catalog's summary of the template creator, used for
// the byline on gallery cards.
type TemplateAuthor struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Template is a named visual configuration users apply to their public
// profile card. Templates are created and edited only through admin flows;
// end users treat them as read-only.
type Template struct {
	ID            int64            `json:"id"`
	Slug          string           `json:"slug"` // immutable once assigned, unique, URL-safe
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      TemplateCategory `json:"category"`
	Price         float64          `json:"price"`
	OriginalPrice float64          `json:"original_price,omitempty"`
	Discount      float64          `json:"discount,omitempty"` // percentage, 0-100
	Colors        ColorScheme      `json:"colors"`
	Fonts         FontSet          `json:"fonts"`
	Layout        Layout           `json:"layout"`
	Tags          []string         `json:"tags,omitempty"`
	IsNew         bool             `json:"isNew"`
	IsPopular     bool             `json:"isPopular"`
	Downloads     int64            `json:"downloads"`
	ThumbnailURL  string           `json:"thumbnail_url,omitempty"`
	PreviewURL    string           `json:"preview_url,omitempty"`
	Author        *TemplateAuthor  `json:"user,omitempty"`

	// Status is the acquisition hint carried only by status-enriched
	// listings (/templates/saved, /templates/used); empty elsewhere.
	Status Acquisition `json:"status,omitempty"`
}

// IsPremium reports whether the template requires purchase.
func (t *Template) IsPremium() bool {
	return t.Category == CategoryPremium
}

// HasDiscount reports whether a discount applies to the original price.
func (t *Template) HasDiscount() bool {
	return t.OriginalPrice > 0 && t.Discount > 0
}

// SetOriginalPrice updates the original price and recomputes the derived
// selling price. Price is never edited directly while a discount is set.
func (t *Template) SetOriginalPrice(original float64) {
	t.OriginalPrice = original
	t.recomputePrice()
}

// SetDiscount updates the discount percentage and recomputes the derived
// selling price.
func (t *Template) SetDiscount(discount float64) {
	t.Discount = discount
	t.recomputePrice()
}

// recomputePrice applies price = original - original*discount/100, rounded to
// centavo precision. With a zero discount the price equals the original.
func (t *Template) recomputePrice() {
	price := t.OriginalPrice - t.OriginalPrice*t.Discount/100

	t.Price = math.Round(price*100) / 100
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe slug candidate from a template name. The
// candidate tracks the name only until the slug field is edited explicitly;
// uniqueness is enforced server-side.
func GenerateSlug(name string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(name), "-")

	return strings.Trim(slug, "-")
}

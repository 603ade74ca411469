package entity

// CardView is the fully resolved, render-ready model of one profile card.
// Every field is concrete: colors and fonts are resolved against the default
// palette, optional profile fields are replaced by placeholders, and only
// visible social links appear. A CardView never contains an empty color, an
// unresolved font, or a hidden link.
type CardView struct {
	Layout   Layout       `json:"layout"`
	Theme    CardTheme    `json:"theme"`
	Header   CardHeader   `json:"header"`
	Contact  []ContactRow `json:"contact"`
	Socials  []SocialRow  `json:"socials"`
	ShareURL string       `json:"share_url,omitempty"`
}

// CardTheme is the per-card resolved palette and typography.
type CardTheme struct {
	Colors ColorScheme `json:"colors"`
	Fonts  FontSet     `json:"fonts"`
	// Banner is a variant-specific banner treatment, e.g. a gradient spec.
	Banner string `json:"banner,omitempty"`
}

// CardHeader is the identity block at the top of the card.
type CardHeader struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	// AvatarPlaceholder is set when no avatar is available and the generic
	// person glyph should be shown instead of a broken image.
	AvatarPlaceholder bool `json:"avatar_placeholder"`
	CoverPlaceholder  bool `json:"cover_placeholder"`
}

// ContactRowKind names the contact row types a layout can display.
type ContactRowKind string

const (
	ContactEmail    ContactRowKind = "email"
	ContactPhone    ContactRowKind = "phone"
	ContactWebsite  ContactRowKind = "website"
	ContactLocation ContactRowKind = "location"
)

// ContactRow is one actionable row of the contact section.
type ContactRow struct {
	Kind  ContactRowKind `json:"kind"`
	Label string         `json:"label"`
	// Href is the action link (mailto:, tel:, https:, maps search).
	Href string `json:"href"`
}

// SocialRow is one rendered social link with its resolved icon key.
type SocialRow struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

package render

import (
	"testing"

	"juantap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_NilTemplateAndProfile(t *testing.T) {
	renderer := NewCardRenderer()

	card := renderer.Render(nil, nil)

	require.NotNil(t, card)
	assert.Equal(t, entity.DefaultLayout, card.Layout)
	assert.Equal(t, defaultColors, card.Theme.Colors)
	assert.Equal(t, defaultFonts, card.Theme.Fonts)
	assert.Equal(t, anonymousName, card.Header.DisplayName)
	assert.True(t, card.Header.AvatarPlaceholder)
	assert.True(t, card.Header.CoverPlaceholder)
	assert.Empty(t, card.Contact)
	assert.Empty(t, card.Socials)
}

func TestRender_UnknownLayoutFallsBack(t *testing.T) {
	renderer := NewCardRenderer()

	tests := []struct {
		name   string
		layout entity.Layout
	}{
		{"unknown key", "holographic-3000"},
		{"empty key", ""},
		{"whitespace and case normalized", "  Neon-Cyber  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := renderer.Render(&entity.Template{Layout: tt.layout}, nil)
			assert.Contains(t, entity.Layouts(), card.Layout)
		})
	}
}

func TestRender_EveryLayoutResolves(t *testing.T) {
	renderer := NewCardRenderer()

	for _, layout := range entity.Layouts() {
		card := renderer.Render(&entity.Template{Layout: layout}, nil)
		assert.Equal(t, layout, card.Layout, "layout %s must render as itself", layout)
	}
}

func TestRender_PartialColorsFallBackPerField(t *testing.T) {
	renderer := NewCardRenderer()
	template := &entity.Template{
		Layout: entity.LayoutMinimalClean,
		Colors: entity.ColorScheme{Primary: "#ff0000"},
	}

	card := renderer.Render(template, nil)

	assert.Equal(t, "#ff0000", card.Theme.Colors.Primary)
	assert.Equal(t, defaultColors.Secondary, card.Theme.Colors.Secondary)
	assert.Equal(t, defaultColors.Accent, card.Theme.Colors.Accent)
}

func TestRender_OnlyVisibleSocialLinks(t *testing.T) {
	renderer := NewCardRenderer()
	profile := &entity.UserProfile{
		Username: "juan",
		Contact: entity.ContactInfo{
			SocialLinks: []entity.SocialLink{
				{ID: "1", Platform: "facebook", Username: "juan.fb", URL: "https://fb.com/juan", IsVisible: true},
				{ID: "2", Platform: "instagram", Username: "juan.ig", URL: "https://ig.com/juan", IsVisible: false},
				{ID: "3", Platform: "WhatsApp Business", Username: "+63 900", URL: "https://wa.me/63900", IsVisible: true},
			},
		},
	}

	// The visibility filter applies identically across all variants.
	for _, layout := range entity.Layouts() {
		card := renderer.Render(&entity.Template{Layout: layout}, profile)

		require.Len(t, card.Socials, 2, "layout %s", layout)
		assert.Equal(t, "facebook", card.Socials[0].Icon)
		assert.Equal(t, "whatsapp", card.Socials[1].Icon)
	}
}

func TestRender_ContactRows(t *testing.T) {
	renderer := NewCardRenderer()
	profile := &entity.UserProfile{
		Name:  "Juan Dela Cruz",
		Email: "juan@example.com",
		Contact: entity.ContactInfo{
			Phone:    "+63 917 000 0000",
			Website:  "https://juantap.ph/juan",
			Location: "Quezon City",
		},
	}

	card := renderer.Render(nil, profile)

	require.Len(t, card.Contact, 4)
	assert.Equal(t, "mailto:juan@example.com", card.Contact[0].Href)
	assert.Equal(t, "tel:+63 917 000 0000", card.Contact[1].Href)
	assert.Equal(t, "juantap.ph/juan", card.Contact[2].Label)
	assert.Equal(t, "https://juantap.ph/juan", card.Contact[2].Href)
	assert.Contains(t, card.Contact[3].Href, "google.com/maps/search")
	assert.Contains(t, card.Contact[3].Href, "Quezon+City")
}

func TestRender_SanitizesFreeText(t *testing.T) {
	renderer := NewCardRenderer()
	profile := &entity.UserProfile{
		DisplayName: "Juan <script>alert(1)</script>",
		Contact:     entity.ContactInfo{Bio: "<b>Designer</b> in Manila"},
	}

	card := renderer.Render(nil, profile)

	assert.NotContains(t, card.Header.DisplayName, "<script>")
	assert.NotContains(t, card.Header.Bio, "<b>")
	assert.Contains(t, card.Header.Bio, "Designer")
}

func TestRender_DoesNotMutateProfile(t *testing.T) {
	renderer := NewCardRenderer()
	profile := &entity.UserProfile{
		Username: "juan",
		Contact: entity.ContactInfo{
			SocialLinks: []entity.SocialLink{
				{ID: "1", Platform: "facebook", IsVisible: true},
				{ID: "2", Platform: "instagram", IsVisible: false},
			},
		},
	}

	renderer.Render(&entity.Template{Layout: entity.LayoutNeonCyber}, profile)

	assert.Len(t, profile.Contact.SocialLinks, 2)
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		want     string
	}{
		{"exact match", "facebook", "facebook"},
		{"case-insensitive", "FaceBook", "facebook"},
		{"tiktok maps to music", "tiktok", "music"},
		{"whatsapp spelled apart", "Whats App", "whatsapp"},
		{"whatsapp business", "whatsapp business", "whatsapp"},
		{"kakao family", "KakaoTalk", "kakaotalk"},
		{"unknown platform", "myspace", IconGeneric},
		{"empty", "", IconGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconFor(tt.platform))
		})
	}
}

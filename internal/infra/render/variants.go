package render

import (
	"fmt"

	"juantap/internal/domain/entity"
)

// applyVariant applies the layout-specific chrome to an otherwise resolved
// card. The switch is exhaustive over entity.Layouts(); the default arm is
// the required fallback for layout values that slipped past resolveLayout
// and is asserted against in tests.
func applyVariant(card *entity.CardView) {
	switch card.Layout {
	case entity.LayoutMinimalClean:
		// Flat card on the background color, no banner.
		card.Theme.Banner = ""
	case entity.LayoutGradientModern:
		card.Theme.Banner = diagonalGradient(card.Theme.Colors.Primary, card.Theme.Colors.Accent)
	case entity.LayoutClassicBlue:
		card.Theme.Banner = solidBanner(card.Theme.Colors.Primary)
	case entity.LayoutNeonCyber:
		card.Theme.Banner = diagonalGradient(card.Theme.Colors.Accent, card.Theme.Colors.Primary)
	case entity.LayoutLuxuryGold:
		card.Theme.Banner = diagonalGradient(card.Theme.Colors.Accent, card.Theme.Colors.Secondary)
	case entity.LayoutNatureOrganic:
		card.Theme.Banner = solidBanner(card.Theme.Colors.Secondary)
	case entity.LayoutRetroVintage:
		card.Theme.Banner = solidBanner(card.Theme.Colors.Accent)
	case entity.LayoutGlassMorphism:
		card.Theme.Banner = diagonalGradient(card.Theme.Colors.Background, card.Theme.Colors.Primary)
	case entity.LayoutMinimalistPro:
		card.Theme.Banner = solidBanner(card.Theme.Colors.Background)
	default:
		card.Layout = entity.DefaultLayout
		card.Theme.Banner = ""
	}
}

func diagonalGradient(from, to string) string {
	return fmt.Sprintf("linear-gradient(135deg, %s, %s)", from, to)
}

func solidBanner(color string) string {
	return color
}

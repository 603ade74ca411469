package render

import "strings"

// IconGeneric is the fallback icon key for unrecognized platforms.
const IconGeneric = "globe"

// exactIcons maps normalized platform names to icon keys.
var exactIcons = map[string]string{
	"facebook":  "facebook",
	"instagram": "instagram",
	"twitter":   "twitter",
	"linkedin":  "linkedin",
	"github":    "github",
	"youtube":   "youtube",
	"tiktok":    "music",
}

// iconFamilies matches messenger platforms whose names arrive in many
// spellings ("WhatsApp", "whats app", "whatsapp business").
var iconFamilies = []struct {
	fragment string
	icon     string
}{
	{"whatsapp", "whatsapp"},
	{"whats", "whatsapp"},
	{"viber", "viber"},
	{"telegram", "telegram"},
	{"kakao", "kakaotalk"},
	{"wechat", "wechat"},
	{"line", "line"},
}

// IconFor resolves a platform name to an icon key. Matching is
// case-insensitive and ignores surrounding and embedded whitespace; anything
// unrecognized gets the generic globe.
func IconFor(platform string) string {
	normalized := strings.ToLower(strings.TrimSpace(platform))
	normalized = strings.ReplaceAll(normalized, " ", "")
	if normalized == "" {
		return IconGeneric
	}

	if icon, ok := exactIcons[normalized]; ok {
		return icon
	}
	for _, family := range iconFamilies {
		if strings.Contains(normalized, family.fragment) {
			return family.icon
		}
	}

	return IconGeneric
}

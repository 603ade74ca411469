package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSocialLinks_ArrayAndStringAreEquivalent(t *testing.T) {
	asArray := json.RawMessage(`[{"id":"1","platform":"facebook","url":"https://fb.com/juan","isVisible":true}]`)
	asString := json.RawMessage(`"[{\"id\":\"1\",\"platform\":\"facebook\",\"url\":\"https://fb.com/juan\",\"isVisible\":true}]"`)

	fromArray := ParseSocialLinks(asArray)
	fromString := ParseSocialLinks(asString)

	require.Len(t, fromArray, 1)
	assert.Equal(t, fromArray, fromString)
	assert.Equal(t, "facebook", fromArray[0].Platform)
}

func TestParseSocialLinks_Degraded(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
	}{
		{"absent", nil},
		{"empty", json.RawMessage(``)},
		{"null", json.RawMessage(`null`)},
		{"malformed string payload", json.RawMessage(`"not json"`)},
		{"wrong type", json.RawMessage(`42`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ParseSocialLinks(tt.raw))
		})
	}
}

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"boolean true", `true`, true},
		{"boolean false", `false`, false},
		{"integer one", `1`, true},
		{"integer zero", `0`, false},
		{"string one", `"1"`, true},
		{"string true", `"true"`, true},
		{"string zero", `"0"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			require.NoError(t, json.Unmarshal([]byte(tt.data), &b))
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestUserProfile_BestName(t *testing.T) {
	tests := []struct {
		name    string
		profile UserProfile
		want    string
	}{
		{"display name wins", UserProfile{DisplayName: "Juan D.", Name: "Juan", Username: "juan"}, "Juan D."},
		{"falls back to name", UserProfile{Name: "Juan", Username: "juan"}, "Juan"},
		{"falls back to username", UserProfile{Username: "juan"}, "juan"},
		{"blank display name skipped", UserProfile{DisplayName: "  ", Name: "Juan"}, "Juan"},
		{"nothing set", UserProfile{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.BestName())
		})
	}
}

func TestUserProfile_VisibleSocialLinks(t *testing.T) {
	profile := UserProfile{
		Contact: ContactInfo{
			SocialLinks: []SocialLink{
				{ID: "1", Platform: "facebook", IsVisible: true},
				{ID: "2", Platform: "instagram", IsVisible: false},
				{ID: "3", Platform: "tiktok", IsVisible: true},
			},
		},
	}

	visible := profile.VisibleSocialLinks()

	require.Len(t, visible, 2)
	assert.Equal(t, "1", visible[0].ID)
	assert.Equal(t, "3", visible[1].ID)
	// The profile itself keeps all links.
	assert.Len(t, profile.Contact.SocialLinks, 3)
}

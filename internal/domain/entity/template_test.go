package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_PriceDerivation(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		discount float64
		want     float64
	}{
		{"quarter discount", 399, 25, 299.25},
		{"zero discount keeps original", 499, 0, 499},
		{"full discount", 199, 100, 0},
		{"half discount rounds to centavo", 99.99, 50, 50},
		{"free template", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := &Template{}
			template.SetOriginalPrice(tt.original)
			template.SetDiscount(tt.discount)

			assert.InDelta(t, tt.want, template.Price, 0.001)
		})
	}
}

func TestTemplate_PriceRecomputedOnEveryEdit(t *testing.T) {
	template := &Template{}
	template.SetOriginalPrice(400)
	template.SetDiscount(50)
	assert.InDelta(t, 200.0, template.Price, 0.001)

	// Editing the original re-derives the price under the standing discount.
	template.SetOriginalPrice(100)
	assert.InDelta(t, 50.0, template.Price, 0.001)
}

func TestTemplate_HasDiscount(t *testing.T) {
	template := &Template{}
	assert.False(t, template.HasDiscount())

	template.SetOriginalPrice(100)
	assert.False(t, template.HasDiscount())

	template.SetDiscount(10)
	assert.True(t, template.HasDiscount())
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Neon Cyber", "neon-cyber"},
		{"punctuation collapses", "Luxury -- Gold!!", "luxury-gold"},
		{"leading and trailing stripped", "  Minimal Clean  ", "minimal-clean"},
		{"digits kept", "Template 2024", "template-2024"},
		{"already a slug", "glass-morphism", "glass-morphism"},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestLayouts_ContainsDefault(t *testing.T) {
	assert.Contains(t, Layouts(), DefaultLayout)
	assert.Len(t, Layouts(), 9)
}

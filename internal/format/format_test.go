package format

import (
	"testing"

	"iconcatalog/internal/core"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		baseName string
		expected string
	}{
		{"simple capitalization", "heart", "Heart"},
		{"multi-word", "facebook-square", "Facebook Square"},
		{"abbreviation substitution", "js", "JavaScript"},
		{"mixed-case abbreviation", "wifi", "WiFi"},
		{"alt expansion", "external-link-alt", "External Link Alternative"},
		{"currency code", "file-invoice-usd", "File Invoice USD"},
		{"empty substitution drops segment", "circle-o", "Circle"},
		{"dropped segment mid-name", "circle-o-notch", "Circle Notch"},
		{"protocol acronym", "file-pdf", "File PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.baseName); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.baseName, got, tt.expected)
			}
		})
	}
}

// Substitution keys are all lowercase, so an already-expanded segment passes
// through untouched and no double substitution can occur.
func TestDisplayNameIdempotent(t *testing.T) {
	expanded := []string{"JavaScript", "Alternative", "WiFi", "USD", "Facebook Square"}

	for _, name := range expanded {
		if got := DisplayName(name); got != name {
			t.Errorf("DisplayName(%q) = %q, want unchanged", name, got)
		}
	}
}

func TestCSSClass(t *testing.T) {
	tests := []struct {
		baseName string
		iconType string
		expected string
	}{
		{"heart", core.VariantSolid, "las la-heart"},
		{"heart", core.VariantRegular, "lar la-heart"},
		{"facebook-square", core.VariantBrand, "lab la-facebook-square"},
	}

	for _, tt := range tests {
		got, err := CSSClass(tt.baseName, tt.iconType)
		if err != nil {
			t.Fatalf("CSSClass(%q, %q) returned error: %v", tt.baseName, tt.iconType, err)
		}
		if got != tt.expected {
			t.Errorf("CSSClass(%q, %q) = %q, want %q", tt.baseName, tt.iconType, got, tt.expected)
		}
	}
}

func TestCSSClassUnknownType(t *testing.T) {
	for _, iconType := range []string{"", "duotone", "SOLID"} {
		if _, err := CSSClass("heart", iconType); err == nil {
			t.Errorf("Expected error for icon type %q", iconType)
		}
	}
}

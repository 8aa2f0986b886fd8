// Package variant decides which rendering variants an icon identifier
// denotes and expands outline identifiers into their record pairs.
package variant

import (
	"strings"

	"iconcatalog/internal/core"
)

// outlineSuffix marks an identifier that carries both a regular (outline)
// and a solid rendering of the same base glyph.
const outlineSuffix = "-o"

// brandIndicators are well-known brand tokens used by the type heuristic.
// This is a deliberately short list, distinct from the classifier's full
// brand membership table.
var brandIndicators = []string{
	"facebook", "twitter", "instagram", "youtube", "google", "apple", "microsoft",
	"amazon", "github", "linkedin", "pinterest", "reddit", "snapchat", "spotify",
	"netflix", "paypal", "visa", "mastercard", "bitcoin", "ethereum", "android",
	"windows", "adobe", "angular", "react", "vue", "node", "npm", "python", "php",
}

// regularIndicators mark outline renderings when found anywhere in the name.
var regularIndicators = []string{"-o", "outline", "regular"}

// Resolution pairs a base name with the variant type of one output record.
type Resolution struct {
	BaseName string
	IconType string
}

// Resolve expands an identifier into the records it denotes. An identifier
// ending in the outline suffix yields a regular/solid pair sharing the
// stripped base name, in that order; everything else yields exactly one
// resolution typed by TypeOf.
func Resolve(identifier string) []Resolution {
	if strings.HasSuffix(identifier, outlineSuffix) {
		base := strings.TrimSuffix(identifier, outlineSuffix)
		return []Resolution{
			{BaseName: base, IconType: core.VariantRegular},
			{BaseName: base, IconType: core.VariantSolid},
		}
	}

	return []Resolution{{BaseName: identifier, IconType: TypeOf(identifier)}}
}

// TypeOf determines the variant type of a non-expanded identifier: brand if
// a brand indicator occurs in the name, regular if an outline indicator
// does, solid otherwise.
func TypeOf(identifier string) string {
	for _, brand := range brandIndicators {
		if strings.Contains(identifier, brand) {
			return core.VariantBrand
		}
	}

	for _, indicator := range regularIndicators {
		if strings.Contains(identifier, indicator) {
			return core.VariantRegular
		}
	}

	return core.VariantSolid
}

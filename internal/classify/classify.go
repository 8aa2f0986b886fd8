// Package classify maps raw icon identifiers to semantic categories and
// search keywords using static lookup tables.
package classify

import (
	"strings"
	"unicode"
)

// Result holds the outcome of classifying a single identifier.
type Result struct {
	Category string
	Keywords []string
}

// Classify resolves an identifier to a category and keyword set.
//
// Resolution runs two independent passes. First, a substring scan over the
// brand name list pre-seeds the brand category and its boilerplate keywords.
// Second, the exact-match membership tables are scanned in fixed order and
// the first table containing the identifier overrides the category. The
// substring pre-seed is a known-weak heuristic: a short brand name embedded
// in an unrelated identifier ("line" in "timeline", say) triggers it even
// though the identifier belongs elsewhere. The exact-match pass corrects
// that only when some table lists the identifier verbatim. This matches the
// established catalog output and is kept as-is.
func Classify(identifier string) Result {
	category := CategoryMisc
	var keywords []string

	if containsBrandSubstring(identifier) {
		category = "brand"
		keywords = append(keywords, brandSeedKeywords...)
	}

	for _, table := range categoryTables {
		if containsExact(table.Members, identifier) {
			category = table.Tag
			break
		}
	}

	keywords = append(keywords, strings.Split(identifier, "-")...)
	keywords = append(keywords, boilerplateKeywords[category]...)

	return Result{
		Category: category,
		Keywords: cleanKeywords(keywords),
	}
}

// containsBrandSubstring reports whether any known brand name occurs inside
// the identifier.
func containsBrandSubstring(identifier string) bool {
	for _, brand := range brandNames {
		if strings.Contains(identifier, brand) {
			return true
		}
	}
	return false
}

func containsExact(members []string, identifier string) bool {
	for _, m := range members {
		if m == identifier {
			return true
		}
	}
	return false
}

// cleanKeywords deduplicates keywords preserving first-seen order and drops
// entries of length <= 1.
func cleanKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, len(keywords))

	for _, kw := range keywords {
		if len(kw) <= 1 || seen[kw] {
			continue
		}
		seen[kw] = true
		cleaned = append(cleaned, kw)
	}

	return cleaned
}

// CategoryTags returns the category tags in table resolution order, with the
// fallback tag appended.
func CategoryTags() []string {
	tags := make([]string, 0, len(categoryTables)+1)
	for _, table := range categoryTables {
		tags = append(tags, table.Tag)
	}
	return append(tags, CategoryMisc)
}

// Members returns the exact-match membership list for a category tag, or nil
// for tags without one (misc).
func Members(tag string) []string {
	for _, table := range categoryTables {
		if table.Tag == tag {
			return table.Members
		}
	}
	return nil
}

// BoilerplateKeywords returns the boilerplate keyword list for a category
// tag, or nil if the category has none.
func BoilerplateKeywords(tag string) []string {
	return boilerplateKeywords[tag]
}

// Description returns the human-readable description for a category tag,
// falling back to a title-cased rendering of the tag itself.
func Description(tag string) string {
	if desc, ok := categoryDescriptions[tag]; ok {
		return desc
	}
	return titleCase(tag)
}

// titleCase upper-cases the first letter of each space- or hyphen-separated
// word, mirroring how unregistered tags were rendered upstream.
func titleCase(tag string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		if prev == ' ' || prev == '-' {
			prev = r
			return unicode.ToUpper(r)
		}
		prev = r
		return r
	}, tag)
}

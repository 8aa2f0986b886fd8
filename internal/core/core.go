package core

import "time"

// Identifier represents a raw icon identifier read from the input list.
type Identifier struct {
	ID        string    `json:"id"`         // Unique identifier for this entry
	Name      string    `json:"name"`       // The raw hyphenated icon name token
	Line      int       `json:"line"`       // 1-based line number in the source file
	DateAdded time.Time `json:"date_added"` // Timestamp when the entry was read
	Source    string    `json:"source"`     // Source of the entry (e.g., "file:icons.txt")
}

// Variant type tags. These are the only three values an IconRecord may carry;
// anything else reaching the CSS prefix lookup is a logic fault.
const (
	VariantSolid   = "solid"
	VariantRegular = "regular"
	VariantBrand   = "brand"
)

// VariantTypes returns the fixed list of variant type tags in catalog order.
func VariantTypes() []string {
	return []string{VariantSolid, VariantRegular, VariantBrand}
}

// IconRecord is one entry of the final catalog. Identifiers ending in the
// outline suffix produce two records sharing everything but IconType and
// the CSS class prefix.
type IconRecord struct {
	Name        string   `json:"name"`        // Base identifier, outline suffix stripped
	DisplayName string   `json:"displayName"` // Human-readable name
	CSSClass    string   `json:"cssClass"`    // Two-token stylesheet class string
	IconType    string   `json:"iconType"`    // One of the variant type tags
	Category    string   `json:"category"`    // Semantic category tag
	Keywords    []string `json:"keywords"`    // Deduplicated search keywords
}

// CatalogMetadata holds the summary block of the catalog document.
type CatalogMetadata struct {
	Version     string   `json:"version"`     // Catalog version string
	TotalIcons  int      `json:"totalIcons"`  // Number of records in the icons list
	Description string   `json:"description"` // Free-text description of the icon set
	Source      string   `json:"source"`      // Source attribution URL
	License     string   `json:"license"`     // License tag
	LastUpdated string   `json:"lastUpdated"` // Date string of the last update
	Categories  []string `json:"categories"`  // Sorted list of category tags actually used
	IconTypes   []string `json:"iconTypes"`   // Fixed list of the three variant type tags
}

// CatalogDocument is the single consolidated output structure.
type CatalogDocument struct {
	Metadata   CatalogMetadata   `json:"metadata"`
	Icons      []IconRecord      `json:"icons"`
	Categories map[string]string `json:"categories"` // Used category tag -> description
}

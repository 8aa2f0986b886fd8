// Package catalog assembles classified icon records into the consolidated
// catalog document.
package catalog

import (
	"fmt"
	"sort"

	"iconcatalog/internal/classify"
	"iconcatalog/internal/core"
	"iconcatalog/internal/format"
	"iconcatalog/internal/variant"
)

// Info holds the fixed descriptive metadata fields of a catalog build.
// Values come from configuration; the defaults match the published catalog.
type Info struct {
	Version     string
	Description string
	Source      string
	License     string
	LastUpdated string
}

// Builder runs the classification pipeline over parsed identifiers and
// collects the resulting records. A Builder is single-use and not safe for
// concurrent use; the pipeline is one synchronous pass.
type Builder struct {
	info           Info
	records        []core.IconRecord
	categoriesUsed map[string]bool
}

// NewBuilder creates a Builder that will stamp the given info block onto
// the assembled document.
func NewBuilder(info Info) *Builder {
	return &Builder{
		info:           info,
		categoriesUsed: make(map[string]bool),
	}
}

// Add classifies one identifier and appends its record(s). Identifiers
// ending in the outline suffix contribute an adjacent regular/solid pair
// sharing name, display name, category and keywords.
func (b *Builder) Add(identifier core.Identifier) error {
	records, err := Expand(identifier.Name)
	if err != nil {
		return fmt.Errorf("expanding %q (line %d): %w", identifier.Name, identifier.Line, err)
	}

	for _, rec := range records {
		b.categoriesUsed[rec.Category] = true
	}
	b.records = append(b.records, records...)

	return nil
}

// AddAll classifies identifiers in order.
func (b *Builder) AddAll(identifiers []core.Identifier) error {
	for _, id := range identifiers {
		if err := b.Add(id); err != nil {
			return err
		}
	}
	return nil
}

// Document assembles the final catalog document from everything added so
// far. Record order is input order; the category list and mapping cover
// only categories actually used, sorted for deterministic output.
func (b *Builder) Document() core.CatalogDocument {
	used := make([]string, 0, len(b.categoriesUsed))
	for cat := range b.categoriesUsed {
		used = append(used, cat)
	}
	sort.Strings(used)

	descriptions := make(map[string]string, len(used))
	for _, cat := range used {
		descriptions[cat] = classify.Description(cat)
	}

	icons := b.records
	if icons == nil {
		icons = []core.IconRecord{}
	}

	return core.CatalogDocument{
		Metadata: core.CatalogMetadata{
			Version:     b.info.Version,
			TotalIcons:  len(icons),
			Description: b.info.Description,
			Source:      b.info.Source,
			License:     b.info.License,
			LastUpdated: b.info.LastUpdated,
			Categories:  used,
			IconTypes:   core.VariantTypes(),
		},
		Icons:      icons,
		Categories: descriptions,
	}
}

// Expand produces the full record set for a single raw identifier: category
// and keywords from the classifier, variant expansion from the resolver,
// display name and CSS class from the formatter. Classification runs on the
// raw identifier, so an outline pair shares its category and keywords.
func Expand(rawName string) ([]core.IconRecord, error) {
	classified := classify.Classify(rawName)
	resolutions := variant.Resolve(rawName)

	records := make([]core.IconRecord, 0, len(resolutions))
	for _, res := range resolutions {
		cssClass, err := format.CSSClass(res.BaseName, res.IconType)
		if err != nil {
			return nil, err
		}

		records = append(records, core.IconRecord{
			Name:        res.BaseName,
			DisplayName: format.DisplayName(res.BaseName),
			CSSClass:    cssClass,
			IconType:    res.IconType,
			Category:    classified.Category,
			Keywords:    classified.Keywords,
		})
	}

	return records, nil
}

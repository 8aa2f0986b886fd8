package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iconcatalog/internal/core"
)

func testDocument() core.CatalogDocument {
	return core.CatalogDocument{
		Metadata: core.CatalogMetadata{
			Version:     "1.3.0",
			TotalIcons:  1,
			Description: "Line Awesome - Free icon font replacement for Font Awesome",
			Source:      "https://icons8.com/line-awesome",
			License:     "MIT",
			LastUpdated: "2025-09-16",
			Categories:  []string{"communication"},
			IconTypes:   core.VariantTypes(),
		},
		Icons: []core.IconRecord{
			{
				Name:        "wifi",
				DisplayName: "WiFi",
				CSSClass:    "las la-wifi",
				IconType:    core.VariantSolid,
				Category:    "communication",
				Keywords:    []string{"wifi", "communication", "contact", "message", "talk"},
			},
		},
		Categories: map[string]string{
			"communication": "Communication & Contact",
		},
	}
}

func TestWriteCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "catalog.json")

	if err := WriteCatalog(testDocument(), outputPath); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read catalog file: %v", err)
	}

	var doc core.CatalogDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("Catalog file is not valid JSON: %v", err)
	}

	if doc.Metadata.TotalIcons != 1 {
		t.Errorf("Expected TotalIcons 1 after round trip, got %d", doc.Metadata.TotalIcons)
	}
	if len(doc.Icons) != 1 || doc.Icons[0].CSSClass != "las la-wifi" {
		t.Errorf("Expected wifi record to survive round trip, got %v", doc.Icons)
	}
	if doc.Categories["communication"] != "Communication & Contact" {
		t.Errorf("Expected category description to survive round trip, got %v", doc.Categories)
	}
}

func TestWriteCatalogFormatting(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "catalog.json")

	doc := testDocument()
	doc.Metadata.Description = "Icons & Glyphs <catalog>"

	if err := WriteCatalog(doc, outputPath); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read catalog file: %v", err)
	}
	contentStr := string(content)

	if !strings.Contains(contentStr, "  \"metadata\"") {
		t.Error("Expected two-space indentation")
	}
	if strings.Contains(contentStr, `\u0026`) || strings.Contains(contentStr, `\u003c`) {
		t.Error("Expected HTML escaping to be disabled")
	}
	if !strings.Contains(contentStr, "Icons & Glyphs <catalog>") {
		t.Error("Expected special characters to survive verbatim")
	}
}

func TestWriteCatalogCreatesParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "nested", "output", "catalog.json")

	if err := WriteCatalog(testDocument(), outputPath); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("Expected catalog file at %s: %v", outputPath, err)
	}
}

func TestWriteCatalogUnwritableDestination(t *testing.T) {
	tmpDir := t.TempDir()
	// A path whose parent is a regular file cannot be created.
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	err := WriteCatalog(testDocument(), filepath.Join(blocker, "catalog.json"))
	if err == nil {
		t.Fatal("Expected error for unwritable destination")
	}
}

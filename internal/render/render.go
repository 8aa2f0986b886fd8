// Package render writes the assembled catalog document to disk.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"iconcatalog/internal/core"
)

// WriteCatalog serializes the document as indented UTF-8 JSON to outputPath,
// creating parent directories as needed. The document is encoded in full
// before anything touches the filesystem, so a serialization failure leaves
// no partial file behind. HTML escaping is disabled so URLs and non-ASCII
// characters survive verbatim.
func WriteCatalog(doc core.CatalogDocument, outputPath string) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog document: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write catalog to %s: %w", outputPath, err)
	}

	return nil
}

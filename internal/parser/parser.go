package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"iconcatalog/internal/core"
)

// Parser handles reading icon identifier lists from plain text files.
type Parser struct {
	// Configuration options could be added here in the future
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseListFile reads a line-oriented identifier file and returns the
// identifiers in document order. Blank lines are skipped.
func (p *Parser) ParseListFile(filePath string) ([]core.Identifier, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.ParseListContent(string(content), "file:"+filePath), nil
}

// ParseListContent extracts identifiers from list content. Each non-blank
// line, whitespace-trimmed, is one identifier; order is preserved.
func (p *Parser) ParseListContent(content, source string) []core.Identifier {
	var identifiers []core.Identifier

	lineNo := 0
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		lineNo++
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		identifiers = append(identifiers, core.Identifier{
			ID:        uuid.NewString(),
			Name:      name,
			Line:      lineNo,
			DateAdded: time.Now().UTC(),
			Source:    source,
		})
	}

	return identifiers
}

// ParseFile is a convenience function that wraps ParseListFile.
func ParseFile(filePath string) ([]core.Identifier, error) {
	parser := NewParser()
	return parser.ParseListFile(filePath)
}

package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseListContent(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "one identifier per line",
			content:  "arrow-down\nfacebook-square\nwifi",
			expected: []string{"arrow-down", "facebook-square", "wifi"},
		},
		{
			name:     "blank lines skipped",
			content:  "arrow-down\n\n\nwifi\n",
			expected: []string{"arrow-down", "wifi"},
		},
		{
			name:     "surrounding whitespace trimmed",
			content:  "  arrow-down  \n\twifi\t",
			expected: []string{"arrow-down", "wifi"},
		},
		{
			name:     "whitespace-only lines skipped",
			content:  "arrow-down\n   \n\t\nwifi",
			expected: []string{"arrow-down", "wifi"},
		},
		{
			name:     "empty content",
			content:  "",
			expected: []string{},
		},
		{
			name:     "trailing newline produces no empty identifier",
			content:  "heart-o\n",
			expected: []string{"heart-o"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifiers := parser.ParseListContent(tt.content, "test")

			if len(identifiers) != len(tt.expected) {
				t.Fatalf("Expected %d identifiers, got %d", len(tt.expected), len(identifiers))
			}
			for i, id := range identifiers {
				if id.Name != tt.expected[i] {
					t.Errorf("Expected identifier %d to be %q, got %q", i, tt.expected[i], id.Name)
				}
			}
		})
	}
}

func TestParseListContentMetadata(t *testing.T) {
	parser := NewParser()

	identifiers := parser.ParseListContent("arrow-down\n\nwifi", "file:icons.txt")
	if len(identifiers) != 2 {
		t.Fatalf("Expected 2 identifiers, got %d", len(identifiers))
	}

	if identifiers[0].Line != 1 {
		t.Errorf("Expected first identifier on line 1, got %d", identifiers[0].Line)
	}
	if identifiers[1].Line != 3 {
		t.Errorf("Expected second identifier on line 3 (blank line counted), got %d", identifiers[1].Line)
	}

	for _, id := range identifiers {
		if id.ID == "" {
			t.Errorf("Expected identifier %q to have a non-empty ID", id.Name)
		}
		if id.Source != "file:icons.txt" {
			t.Errorf("Expected source 'file:icons.txt', got %q", id.Source)
		}
		if id.DateAdded.IsZero() {
			t.Errorf("Expected identifier %q to have DateAdded set", id.Name)
		}
	}

	if identifiers[0].ID == identifiers[1].ID {
		t.Error("Expected identifiers to have distinct IDs")
	}
}

func TestParseListFile(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "icons.txt")

	content := "arrow-down\n\nfacebook-square\nwifi\n"
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	identifiers, err := ParseFile(filePath)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	if len(identifiers) != 3 {
		t.Fatalf("Expected 3 identifiers, got %d", len(identifiers))
	}
	if identifiers[0].Name != "arrow-down" {
		t.Errorf("Expected first identifier 'arrow-down', got %q", identifiers[0].Name)
	}
	if identifiers[0].Source != "file:"+filePath {
		t.Errorf("Expected source to carry the file path, got %q", identifiers[0].Source)
	}
}

func TestParseListFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
}

package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iconcatalog/internal/catalog"
)

// NewLookupCmd creates the lookup command for inspecting individual
// identifiers
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <identifier>...",
		Short: "Show the catalog records an identifier would produce",
		Long: `Lookup classifies identifiers in memory and renders the records the
build pipeline would emit for them, without touching any files.

Useful for checking how an identifier is categorized, which variant pair an
outline identifier expands into, and what keywords it receives.

Examples:
  # Inspect a brand icon
  iconcatalog lookup facebook-square

  # Inspect an outline identifier (expands into two records)
  iconcatalog lookup arrow-o

  # Several at once
  iconcatalog lookup wifi js heart-o`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}

	return cmd
}

func runLookup(identifiers []string) error {
	headers := []string{"Name", "Display Name", "CSS Class", "Type", "Category", "Keywords"}
	var rows [][]string

	for _, identifier := range identifiers {
		records, err := catalog.Expand(identifier)
		if err != nil {
			return fmt.Errorf("lookup of %q failed: %w", identifier, err)
		}

		for _, rec := range records {
			rows = append(rows, []string{
				rec.Name,
				rec.DisplayName,
				rec.CSSClass,
				rec.IconType,
				rec.Category,
				strings.Join(rec.Keywords, ", "),
			})
		}
	}

	fmt.Println(renderTable(headers, rows, nil))
	fmt.Printf("\n%d record(s) from %d identifier(s)\n", len(rows), len(identifiers))

	return nil
}

package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"iconcatalog/internal/classify"
)

// NewCategoriesCmd creates the categories command for browsing the static
// category tables
func NewCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the static category tables",
		Long: `Categories renders the fixed category set used by the classifier.

Shown per category: the tag, its human-readable description, the number of
exact-match member identifiers, and the boilerplate keywords appended to
every icon resolved into that category. The listing follows the
classifier's resolution order; the fallback category comes last.

Examples:
  iconcatalog categories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories()
		},
	}

	return cmd
}

func runCategories() error {
	headers := []string{"Tag", "Description", "Members", "Boilerplate Keywords"}
	var rows [][]string

	for _, tag := range classify.CategoryTags() {
		members := classify.Members(tag)
		keywords := classify.BoilerplateKeywords(tag)

		rows = append(rows, []string{
			tag,
			classify.Description(tag),
			strconv.Itoa(len(members)),
			strings.Join(keywords, ", "),
		})
	}

	fmt.Println(renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}))
	fmt.Printf("\n%d categories (resolution order; identifiers no table claims fall back to %q)\n",
		len(rows), classify.CategoryMisc)

	return nil
}

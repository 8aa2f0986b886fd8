package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"iconcatalog/internal/catalog"
	"iconcatalog/internal/config"
	"iconcatalog/internal/logger"
	"iconcatalog/internal/parser"
	"iconcatalog/internal/render"
)

// NewBuildCmd creates the build command for generating the catalog document
func NewBuildCmd() *cobra.Command {
	var (
		outputPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "build [input-file]",
		Short: "Build the icon catalog JSON from an identifier list",
		Long: `Build runs the full catalog pipeline over an identifier list file.

This command:
  • Reads icon identifiers line by line (blank lines skipped)
  • Classifies each identifier into a category with search keywords
  • Expands outline identifiers (-o suffix) into regular/solid record pairs
  • Derives display names and stylesheet classes
  • Writes one consolidated JSON catalog document

The input file defaults to catalog.input from configuration; the output
destination defaults to catalog.output. Processing is all-or-nothing:
either a complete document is written, or nothing is.

Examples:
  # Build with configured paths
  iconcatalog build

  # Explicit input and output
  iconcatalog build icons.txt --output catalog.json

  # Classify and summarize without writing
  iconcatalog build icons.txt --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := config.GetInputPath()
			if len(args) > 0 {
				inputPath = args[0]
			}
			if outputPath == "" {
				outputPath = config.GetOutputPath()
			}
			return runBuild(inputPath, outputPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "destination path for the catalog JSON (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify and summarize without writing the catalog")

	return cmd
}

func runBuild(inputPath, outputPath string, dryRun bool) error {
	log := logger.Get()
	log.Info("Starting catalog build",
		"input", inputPath,
		"output", outputPath,
		"dry_run", dryRun,
	)

	startTime := time.Now()

	fmt.Println("Building comprehensive icon catalog JSON...")

	identifiers, err := parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read identifier list: %w", err)
	}

	log.Info("Parsed identifier list", "identifiers", len(identifiers))

	meta := config.GetMetadata()
	builder := catalog.NewBuilder(catalog.Info{
		Version:     meta.Version,
		Description: meta.Description,
		Source:      meta.Source,
		License:     meta.License,
		LastUpdated: meta.LastUpdated,
	})

	if err := builder.AddAll(identifiers); err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	doc := builder.Document()
	duration := time.Since(startTime)

	if dryRun {
		log.Info("Dry run mode - catalog not written")
	} else {
		if err := render.WriteCatalog(doc, outputPath); err != nil {
			return err
		}
		log.Info("Catalog written", "path", outputPath)
	}

	// Display results
	log.Info("Catalog build completed",
		"duration", duration.String(),
		"identifiers", len(identifiers),
		"icons", doc.Metadata.TotalIcons,
		"categories", len(doc.Categories),
	)

	fmt.Println("\n📊 Catalog Summary")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Duration:     %s\n", duration.Round(time.Millisecond))
	fmt.Printf("Identifiers:  %d\n", len(identifiers))
	fmt.Printf("Total icons:  %d\n", doc.Metadata.TotalIcons)
	fmt.Printf("Categories:   %d\n", len(doc.Categories))
	fmt.Printf("Icon types:   %s\n", strings.Join(doc.Metadata.IconTypes, ", "))

	if dryRun {
		fmt.Println("\nℹ️  Dry run - no catalog written")
	} else {
		fmt.Printf("\n✅ Successfully created %s\n", outputPath)
	}

	return nil
}

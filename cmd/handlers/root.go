package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iconcatalog/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iconcatalog",
		Short: "Build a structured JSON catalog from a flat list of icon identifiers",
		Long: `Icon Catalog Builder

Reads a plain text list of hyphenated icon identifiers (one per line),
classifies each into a category, generates search keywords, derives display
names and stylesheet classes, expands outline variants, and writes one
consolidated JSON catalog document.

Core workflows:
  • Build: identifier list file → complete catalog JSON
  • Lookup: inspect how individual identifiers would be classified
  • Categories: browse the static category tables

Examples:
  # Build the catalog from the configured input list
  iconcatalog build

  # Build from an explicit list into an explicit destination
  iconcatalog build icons.txt --output catalog.json

  # See what records an identifier produces
  iconcatalog lookup arrow-o facebook-square wifi

  # Show the category tables
  iconcatalog categories`,
		Version: "1.3.0",
	}

	// Initialize configuration
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .iconcatalog.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewLookupCmd())
	rootCmd.AddCommand(NewCategoriesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/saleemayman/carpet-invoices/internal/parser"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	tolerance    string
)

var rootCmd = &cobra.Command{
	Use:   "carpet-invoices",
	Short: "Parse carpet supplier invoices and credit notes",
	Long: `carpet-invoices extracts structured data from the PDF invoices and
credit notes of the carpet supplier.

The documents live in a month-organized tree:
  <root>/YYYYMM/RE/*.pdf   invoices
  <root>/YYYYMM/GS/*.pdf   credit notes

Each document yields its line items, footer totals, identifiers and notes.
Totals are cross-checked against the line items; mismatches are reported
as warnings, never as hard failures.

Examples:
  # Parse a whole document tree and print JSON
  carpet-invoices process ./documents

  # Parse and write one combined_data.csv per folder
  carpet-invoices process ./documents --export-dir ./out

  # Check a tree for incomplete or inconsistent documents
  carpet-invoices validate ./documents

  # Show file metadata and filename identifiers
  carpet-invoices info 202101/RE/20210110_RE123456_AU1234.pdf`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, csv, table)")
	rootCmd.PersistentFlags().StringVar(&tolerance, "tolerance", "", "Relative tolerance for totals cross-checks (env: CARPET_TOLERANCE)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env file is optional; flags and real environment win over it.
	_ = godotenv.Load()

	if tolerance == "" {
		tolerance = os.Getenv("CARPET_TOLERANCE")
	}
}

// buildParser assembles the parser from the default configuration plus any
// tolerance override.
func buildParser() (*parser.Parser, error) {
	cfg := parser.DefaultConfig()
	if tolerance != "" {
		tol, err := decimal.NewFromString(tolerance)
		if err != nil {
			return nil, fmt.Errorf("invalid tolerance %q: %w", tolerance, err)
		}
		cfg.ReconcileTolerance = tol
	}
	return parser.New(cfg), nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

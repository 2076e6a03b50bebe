package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saleemayman/carpet-invoices/internal/batch"
	"github.com/saleemayman/carpet-invoices/internal/pdftext"
)

var validateCmd = &cobra.Command{
	Use:   "validate <root>",
	Short: "Check a document tree for incomplete or inconsistent documents",
	Long: `Parse every PDF in the tree and report documents that need manual
review:

  - files whose text could not be extracted
  - documents without a recognizable heading
  - documents whose item table or totals were not fully recovered
  - documents whose totals do not reconcile with their line items

The command exits non-zero when any document fails a check, so it can
gate an import job.

Examples:
  carpet-invoices validate ./documents
  carpet-invoices validate ./documents --tolerance 0.01`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationResult holds the checks for a single file.
type ValidationResult struct {
	File     string   `json:"file"`
	Folder   string   `json:"folder"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := buildParser()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	runner := batch.NewRunner(p, pdftext.New(), 0)
	batchResults, err := runner.Run(ctx, args[0])
	if err != nil {
		return err
	}

	results := make([]*ValidationResult, 0, len(batchResults))
	allValid := true
	for _, res := range batchResults {
		result := &ValidationResult{
			File:   res.File,
			Folder: res.Folder,
			Valid:  true,
		}

		switch {
		case res.Err != nil:
			result.Valid = false
			result.Errors = append(result.Errors, res.Err.Error())
		case !res.Doc.IsComplete:
			result.Valid = false
			result.Errors = append(result.Errors, "item table or totals not fully recovered")
			result.Errors = append(result.Errors, res.Doc.Diagnostics...)
		default:
			result.Warnings = res.Doc.ReconciliationWarnings
			if len(result.Warnings) > 0 {
				result.Valid = false
			}
		}

		if !result.Valid {
			allValid = false
		}
		results = append(results, result)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s/%s: VALID\n", r.Folder, r.File)
			} else {
				fmt.Printf("✗ %s/%s: INVALID\n", r.Folder, r.File)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
			for _, w := range r.Warnings {
				fmt.Printf("  ⚠ %s\n", w)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}

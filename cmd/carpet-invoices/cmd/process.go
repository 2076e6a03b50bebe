package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/saleemayman/carpet-invoices/internal/batch"
	gdec "github.com/saleemayman/carpet-invoices/internal/decimal"
	"github.com/saleemayman/carpet-invoices/internal/export"
	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/pdftext"
)

var (
	outputFile string
	exportDir  string
	workers    int
	timeout    time.Duration
)

var processCmd = &cobra.Command{
	Use:   "process <root>",
	Short: "Parse all documents in a tree",
	Long: `Parse every PDF in a month-organized document tree and extract line
items, totals, identifiers and notes.

A document that fails extraction or whose heading is missing is reported
with an error but never aborts the rest of the batch. Documents whose
item table or totals could not be fully recovered come back with
is_complete = false and carry diagnostics explaining what was missed.

With --export-dir, one combined_data.csv is written per source folder,
mirroring the YYYYMM/RE and YYYYMM/GS layout under the export directory.

Examples:
  carpet-invoices process ./documents
  carpet-invoices process ./documents -f table
  carpet-invoices process ./documents --export-dir ./out -o results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	processCmd.Flags().StringVar(&exportDir, "export-dir", "", "Write one combined_data.csv per folder under this directory")
	processCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0 = default)")
	processCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "Overall processing timeout")
}

// ProcessResult holds the outcome for a single file.
type ProcessResult struct {
	File     string                `json:"file"`
	Folder   string                `json:"folder"`
	Document *model.ParsedDocument `json:"document,omitempty"`
	Error    string                `json:"error,omitempty"`
}

func runProcess(cmd *cobra.Command, args []string) error {
	p, err := buildParser()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	runner := batch.NewRunner(p, pdftext.New(), workers)
	batchResults, err := runner.Run(ctx, args[0])
	if err != nil {
		return err
	}

	printVerbose("Parsed %d files\n", len(batchResults))

	results := make([]*ProcessResult, 0, len(batchResults))
	for _, res := range batchResults {
		out := &ProcessResult{
			File:     res.File,
			Folder:   res.Folder,
			Document: res.Doc,
		}
		if res.Err != nil {
			out.Error = res.Err.Error()
			printVerbose("  %s: %v\n", res.File, res.Err)
		} else if !res.Doc.IsComplete {
			printVerbose("  %s: incomplete (%d diagnostics)\n", res.File, len(res.Doc.Diagnostics))
		}
		results = append(results, out)
	}

	if exportDir != "" {
		if err := exportFolders(batchResults); err != nil {
			return err
		}
	}

	return outputResults(results)
}

// exportFolders writes one combined CSV per source folder.
func exportFolders(results []batch.Result) error {
	byFolder := make(map[string][]*model.ParsedDocument)
	var order []string
	for _, res := range results {
		if res.Doc == nil {
			continue
		}
		if _, seen := byFolder[res.Folder]; !seen {
			order = append(order, res.Folder)
		}
		byFolder[res.Folder] = append(byFolder[res.Folder], res.Doc)
	}

	for _, folder := range order {
		rows := export.Combine(byFolder[folder])
		if len(rows) == 0 {
			continue
		}
		path := filepath.Join(exportDir, filepath.FromSlash(folder), export.CombinedFileName)
		if err := export.WriteCSVFile(path, rows); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		printVerbose("Wrote %s (%d rows)\n", path, len(rows))
	}
	return nil
}

func outputResults(results []*ProcessResult) error {
	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch outputFormat {
	case "json":
		return outputJSON(writer, results)
	case "table":
		return outputTable(writer, results)
	case "csv":
		return outputCSV(writer, results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputJSON(w *os.File, results []*ProcessResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func outputTable(w *os.File, results []*ProcessResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FOLDER\tFILE\tNUMBER\tDATE\tROWS\tGROSS\tCOMPLETE")
	fmt.Fprintln(tw, "------\t----\t------\t----\t----\t-----\t--------")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t%s\tERROR: %s\t\t\t\t\n", r.Folder, r.File, r.Error)
			continue
		}

		doc := r.Document
		date := ""
		if doc.Totals.Date != nil {
			date = doc.Totals.Date.Format(model.DateLayout)
		}
		gross := ""
		if doc.Totals.GrossTotal != nil {
			gross = gdec.FormatGerman(*doc.Totals.GrossTotal)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%t\n",
			r.Folder,
			r.File,
			doc.Identifiers.NumberFromFilename,
			date,
			len(doc.Rows),
			gross,
			doc.IsComplete,
		)
	}

	return tw.Flush()
}

func outputCSV(w *os.File, results []*ProcessResult) error {
	var docs []*model.ParsedDocument
	for _, r := range results {
		if r.Document != nil {
			docs = append(docs, r.Document)
		}
	}
	return export.WriteCSV(w, export.Combine(docs))
}

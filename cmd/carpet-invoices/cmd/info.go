package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saleemayman/carpet-invoices/internal/parser"
	"github.com/saleemayman/carpet-invoices/internal/pdftext"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show information about document files",
	Long: `Display information about document files without parsing their text.

Shows:
  - File metadata (size, modification time)
  - PDF structure check and page count
  - Identifiers recovered from the filename alone

The folder type is inferred from the file's parent directory (RE or GS).

Examples:
  carpet-invoices info 202101/RE/20210110_RE123456_AU1234.pdf
  carpet-invoices info documents/202101/GS/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	extractor := pdftext.New()
	for _, file := range args {
		printFileInfo(extractor, file)
		fmt.Println()
	}
	return nil
}

func printFileInfo(extractor *pdftext.Extractor, path string) {
	fmt.Printf("File: %s\n", path)

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}
	fmt.Printf("  Size: %d bytes\n", info.Size())
	fmt.Printf("  Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))

	if err := extractor.Validate(path); err != nil {
		fmt.Printf("  PDF check: %v\n", err)
	} else {
		fmt.Printf("  PDF check: ok\n")
	}

	if pages, err := extractor.PageCount(path); err == nil {
		fmt.Printf("  Pages: %d\n", pages)
	}

	folder := filepath.Base(filepath.Dir(path))
	ids := parser.ExtractFromFilename(folder, filepath.Base(path))
	fmt.Printf("  Type: %s\n", typeName(ids))
	if ids.Number != "" {
		fmt.Printf("  Number: %s\n", ids.Number)
	}
	if ids.OrderNr != "" {
		fmt.Printf("  Order: %s\n", ids.OrderNr)
	}
	if ids.Date != "" {
		fmt.Printf("  Date: %s\n", ids.Date)
	}
}

func typeName(ids parser.FilenameIdentifiers) string {
	if ids.Type == "" {
		return "Unknown"
	}
	return string(ids.Type)
}

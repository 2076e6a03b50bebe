// Package invoices provides a public API for parsing the carpet supplier's
// invoices and credit notes.
//
// This package exposes the core types for extracting line items, totals,
// identifiers and notes from document text, plus the reconciliation checks
// that cross-validate them.
//
// Example usage:
//
//	p := invoices.NewParser()
//	doc, err := p.Parse(lines, "20210110_RE123456_AU1234.pdf", "202101/RE")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Totals.GrossTotal)
package invoices

import (
	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/parser"
)

// Re-export core types for public API
type (
	ParsedDocument      = model.ParsedDocument
	LineItemRow         = model.LineItemRow
	DocumentTotals      = model.DocumentTotals
	DocumentIdentifiers = model.DocumentIdentifiers
	DocumentType        = model.DocumentType
)

// Re-export document type constants
const (
	TypeInvoice       = model.DocumentTypeInvoice
	TypeReimbursement = model.DocumentTypeReimbursement
	TypeUnknown       = model.DocumentTypeUnknown
)

// Re-export error types
type (
	HeaderNotFoundError = model.HeaderNotFoundError
	ParseError          = model.ParseError
	ExtractionError     = model.ExtractionError
)

// Re-export parser configuration
type Config = parser.Config

// Parser parses document text into structured results.
type Parser = parser.Parser

// NewParser returns a parser with the default configuration.
func NewParser() *Parser {
	return parser.NewDefault()
}

// NewParserWithConfig returns a parser with a custom configuration.
func NewParserWithConfig(cfg Config) *Parser {
	return parser.New(cfg)
}

// DefaultConfig returns the configuration matching the reference documents.
func DefaultConfig() Config {
	return parser.DefaultConfig()
}

// FilenameIdentifiers re-exports the filename extraction result.
type FilenameIdentifiers = parser.FilenameIdentifiers

// ExtractFromFilename extracts identifiers from a document filename.
func ExtractFromFilename(folder, filename string) FilenameIdentifiers {
	return parser.ExtractFromFilename(folder, filename)
}

// Package parser turns the ordered text lines of a German invoice or
// credit-note document into a structured ParsedDocument. It is a pure,
// single-pass, priority-ordered state machine: no I/O, no shared state, one
// parse call per document.
package parser

import (
	"strings"

	"github.com/saleemayman/carpet-invoices/internal/model"
)

// Parser assembles parsed documents from text lines. It is stateless apart
// from its immutable configuration and safe for concurrent use across
// documents.
type Parser struct {
	cfg Config
}

// New creates a parser with the given configuration.
func New(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// NewDefault creates a parser with DefaultConfig.
func NewDefault() *Parser {
	return New(DefaultConfig())
}

// Parse processes one document. The folder name selects the identifier
// grammar ("RE" invoices vs "GS" credit notes); lines are the extracted
// page text in order.
//
// A missing document heading is the only fatal condition and returns a
// *model.HeaderNotFoundError. Every other anomaly yields a document with
// IsComplete=false and diagnostics attached, so batch processing can
// continue.
func (p *Parser) Parse(lines []string, filename, folder string) (*model.ParsedDocument, error) {
	headingIdx := findHeading(lines)
	if headingIdx < 0 {
		return nil, &model.HeaderNotFoundError{File: filename}
	}

	bodyIDs := scanBodyIdentifiers(lines[:headingIdx])

	c := newClassifier(p.cfg)
	for _, line := range lines[headingIdx:] {
		c.feed(line)
	}
	rows, totals, notes, complete, diagnostics := c.finalize()

	fileIDs := ExtractFromFilename(folder, filename)

	doc := &model.ParsedDocument{
		Filename: filename,
		Type:     fileIDs.Type,
		Rows:     rows,
		Totals:   totals,
		Identifiers: model.DocumentIdentifiers{
			NumberFromFilename:  fileIDs.Number,
			OrderNrFromFilename: fileIDs.OrderNr,
			DateFromFilename:    fileIDs.Date,
			NumberFromBody:      bodyIDs.Number,
			OrderNrFromBody:     bodyIDs.OrderNr,
		},
		Notes:       notes,
		IsComplete:  complete,
		Diagnostics: diagnostics,
		RawText:     strings.Join(lines, "\n"),
	}
	doc.ReconciliationWarnings = Reconcile(doc.Rows, doc.Totals, p.cfg.ReconcileTolerance)

	return doc, nil
}

// findHeading locates the document heading line. The heading synonyms are
// exact line matches, as emitted by the PDF text layer.
func findHeading(lines []string) int {
	for i, line := range lines {
		if line == headingInvoice || line == headingCreditNote {
			return i
		}
	}
	return -1
}

// scanBodyIdentifiers reads the region above the heading. The first line
// carrying a document number wins; a page marker ends the region.
func scanBodyIdentifiers(lines []string) BodyIdentifiers {
	for _, line := range lines {
		if matchesBodyIdentifiers(line) {
			return ExtractFromBodyLine(line)
		}
		if pageMarkerPattern.MatchString(line) {
			break
		}
	}
	return BodyIdentifiers{}
}

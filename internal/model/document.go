package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes invoices (RE folders) from credit notes /
// reimbursements (GS folders).
type DocumentType string

const (
	DocumentTypeInvoice       DocumentType = "INVOICE"
	DocumentTypeReimbursement DocumentType = "REIMBURSEMENT"
	DocumentTypeUnknown       DocumentType = ""
)

// DateLayout is the calendar date format used inside document bodies.
const DateLayout = "02.01.2006"

// LineItemRow is one row of the item table. UnitPrice and LineTotal are
// always set when a row is emitted; ArticleID, Description and VATRate may
// be empty depending on which row grammar matched.
type LineItemRow struct {
	ItemNr      int             `json:"item_nr"`
	Quantity    int             `json:"quantity"`
	ArticleID   string          `json:"article_id"`
	Description string          `json:"description"`
	VATRate     string          `json:"vat"`
	UnitPrice   decimal.Decimal `json:"item_price"`
	LineTotal   decimal.Decimal `json:"total_price"`
}

// DocumentTotals holds the footer amounts and the in-body document date.
// A document counts as totaled only when all four fields are set.
type DocumentTotals struct {
	NetTotal   *decimal.Decimal `json:"net_total"`
	VATAmount  *decimal.Decimal `json:"vat_amount"`
	GrossTotal *decimal.Decimal `json:"total"`
	Date       *time.Time       `json:"date"`
}

// Complete reports whether date and all three amounts were found.
func (t DocumentTotals) Complete() bool {
	return t.Date != nil && t.NetTotal != nil && t.VATAmount != nil && t.GrossTotal != nil
}

// DocumentIdentifiers keeps the numbers recovered from the filename and from
// the body text side by side. The two sources may disagree; both are
// retained so downstream consumers can detect the inconsistency.
type DocumentIdentifiers struct {
	NumberFromFilename  string `json:"invoice_or_reimbursement_nr_from_filename"`
	OrderNrFromFilename string `json:"order_nr_from_filename"`
	DateFromFilename    string `json:"date_filename"`
	NumberFromBody      string `json:"invoice_nr_from_pdf"`
	OrderNrFromBody     string `json:"order_nr_from_pdf"`
}

// ParsedDocument is the final result for one source document. It is
// populated during a single pass over the text lines and not mutated after
// finalization.
type ParsedDocument struct {
	Filename    string              `json:"filename"`
	Type        DocumentType        `json:"file_type"`
	Rows        []LineItemRow       `json:"rows"`
	Totals      DocumentTotals      `json:"totals"`
	Identifiers DocumentIdentifiers `json:"identifiers"`
	Notes       string              `json:"notes"`
	IsComplete  bool                `json:"is_complete"`

	// ReconciliationWarnings lists numeric cross-check mismatches. They never
	// block emission of the row data.
	ReconciliationWarnings []string `json:"reconciliation_warnings,omitempty"`

	// Diagnostics records non-fatal parsing anomalies (discarded pending
	// rows, missing totals, rejected rows).
	Diagnostics []string `json:"diagnostics,omitempty"`

	// RawText is the newline-joined input, kept for audit and debugging.
	RawText string `json:"raw_text,omitempty"`
}

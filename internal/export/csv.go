// Package export flattens parsed documents into the consolidated CSV used
// for downstream bookkeeping. One document becomes one CSV row per line
// item, with the document-level fields repeated on every row.
package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	gdec "github.com/saleemayman/carpet-invoices/internal/decimal"
	"github.com/saleemayman/carpet-invoices/internal/model"
)

// CombinedFileName is the per-folder output file name.
const CombinedFileName = "combined_data.csv"

// Row is one denormalized line of the consolidated CSV (gocsv marshals by
// header name). Amounts are rendered in the German format so the export
// matches the source documents digit for digit.
type Row struct {
	Filename         string `csv:"filename"`
	FileType         string `csv:"file_type"`
	DateFromFilename string `csv:"date_filename"`
	Date             string `csv:"date"`

	ItemNr      int    `csv:"item_nr"`
	Quantity    int    `csv:"quantity"`
	ArticleID   string `csv:"article_id"`
	Description string `csv:"description"`
	VATRate     string `csv:"vat"`
	UnitPrice   string `csv:"item_price"`
	LineTotal   string `csv:"total_price"`

	NetTotal   string `csv:"net_total"`
	VATAmount  string `csv:"vat_amount"`
	GrossTotal string `csv:"total"`
	Notes      string `csv:"notes"`

	NumberFromFilename  string `csv:"invoice_or_reimbursement_nr_from_filename"`
	OrderNrFromFilename string `csv:"order_nr_from_filename"`
	NumberFromBody      string `csv:"invoice_nr_from_pdf"`
	OrderNrFromBody     string `csv:"order_nr_from_pdf"`
}

// Rows denormalizes one document into CSV rows, one per line item.
// Documents without rows produce no output; they are reported through the
// batch diagnostics instead.
func Rows(doc *model.ParsedDocument) []Row {
	if doc == nil || len(doc.Rows) == 0 {
		return nil
	}

	base := Row{
		Filename:            doc.Filename,
		FileType:            string(doc.Type),
		DateFromFilename:    doc.Identifiers.DateFromFilename,
		Notes:               doc.Notes,
		NumberFromFilename:  doc.Identifiers.NumberFromFilename,
		OrderNrFromFilename: doc.Identifiers.OrderNrFromFilename,
		NumberFromBody:      doc.Identifiers.NumberFromBody,
		OrderNrFromBody:     doc.Identifiers.OrderNrFromBody,
	}
	if doc.Totals.Date != nil {
		base.Date = doc.Totals.Date.Format(model.DateLayout)
	}
	if doc.Totals.NetTotal != nil {
		base.NetTotal = gdec.FormatGerman(*doc.Totals.NetTotal)
	}
	if doc.Totals.VATAmount != nil {
		base.VATAmount = gdec.FormatGerman(*doc.Totals.VATAmount)
	}
	if doc.Totals.GrossTotal != nil {
		base.GrossTotal = gdec.FormatGerman(*doc.Totals.GrossTotal)
	}

	rows := make([]Row, 0, len(doc.Rows))
	for _, item := range doc.Rows {
		row := base
		row.ItemNr = item.ItemNr
		row.Quantity = item.Quantity
		row.ArticleID = item.ArticleID
		row.Description = item.Description
		row.VATRate = item.VATRate
		row.UnitPrice = gdec.FormatGerman(item.UnitPrice)
		row.LineTotal = gdec.FormatGerman(item.LineTotal)
		rows = append(rows, row)
	}
	return rows
}

// Combine flattens a set of documents into one row slice, preserving
// document order.
func Combine(docs []*model.ParsedDocument) []Row {
	var rows []Row
	for _, doc := range docs {
		rows = append(rows, Rows(doc)...)
	}
	return rows
}

// WriteCSV marshals rows to w, header included.
func WriteCSV(w io.Writer, rows []Row) error {
	return gocsv.Marshal(&rows, w)
}

// WriteCSVFile writes rows to path, creating parent directories as needed.
func WriteCSVFile(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, rows)
}

// Package pdftext turns PDF files into the plain text lines the parser
// consumes. Extraction is row-oriented: each visual text row of a page
// becomes one line, words joined by single spaces, which matches the
// layout assumptions of the row grammars downstream.
package pdftext

import (
	"bytes"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/saleemayman/carpet-invoices/internal/model"
)

// Extractor reads text out of PDF documents. The zero value is ready to use.
type Extractor struct{}

// New returns a ready Extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractLines reads the file at path and returns its text rows in page
// order.
func (e *Extractor) ExtractLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewExtractionError(path, "reading file", err)
	}
	return e.ExtractLinesFromBytes(data, path)
}

// ExtractLinesFromBytes extracts text rows from in-memory PDF data. The
// name is only used for error context.
func (e *Extractor) ExtractLinesFromBytes(data []byte, name string) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, model.NewExtractionError(name, "opening PDF", err)
	}

	var lines []string
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, model.NewExtractionError(name, "reading page text", err)
		}

		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			line := strings.TrimSpace(strings.Join(words, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}

// PageCount returns the number of pages in the file at path.
func (e *Extractor) PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, model.NewExtractionError(path, "counting pages", err)
	}
	return count, nil
}

// Validate runs a structural PDF validation on the file at path. A nil
// return means the file is a well-formed PDF; it says nothing about
// whether the text inside is parseable.
func (e *Extractor) Validate(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return model.NewExtractionError(path, "validating PDF", err)
	}
	return nil
}

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/parser"
)

func TestDocumentTypeForFolder(t *testing.T) {
	assert.Equal(t, model.DocumentTypeInvoice, parser.DocumentTypeForFolder("202101/RE"))
	assert.Equal(t, model.DocumentTypeReimbursement, parser.DocumentTypeForFolder("202101/GS"))
	assert.Equal(t, model.DocumentTypeUnknown, parser.DocumentTypeForFolder("202101"))
}

func TestExtractFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		filename string
		want     parser.FilenameIdentifiers
	}{
		{
			name:     "amazon invoice",
			folder:   "202101/RE",
			filename: "20210110_RE123456_AMZ-ADA-123-1234567-1234567.pdf",
			want: parser.FilenameIdentifiers{
				Type:    model.DocumentTypeInvoice,
				Number:  "RE123456",
				OrderNr: "AMZ-ADA-123-1234567-1234567",
				Date:    "20210110",
			},
		},
		{
			name:     "ebay credit note",
			folder:   "202103/GS",
			filename: "20210302_GS000123_EBAY-DE-ADA-12-12345-12345.pdf",
			want: parser.FilenameIdentifiers{
				Type:    model.DocumentTypeReimbursement,
				Number:  "GS000123",
				OrderNr: "EBAY-DE-ADA-12-12345-12345",
				Date:    "20210302",
			},
		},
		{
			name:     "shopify order",
			folder:   "RE",
			filename: "20210409_RE111111_SHOPIFY-ADA-1234567890123.pdf",
			want: parser.FilenameIdentifiers{
				Type:    model.DocumentTypeInvoice,
				Number:  "RE111111",
				OrderNr: "SHOPIFY-ADA-1234567890123",
				Date:    "20210409",
			},
		},
		{
			name:     "legacy AU order",
			folder:   "RE",
			filename: "20210520_RE222222_AU1234.pdf",
			want: parser.FilenameIdentifiers{
				Type:    model.DocumentTypeInvoice,
				Number:  "RE222222",
				OrderNr: "AU1234",
				Date:    "20210520",
			},
		},
		{
			name:     "unknown order format stays empty",
			folder:   "RE",
			filename: "20210110_RE123456_WHATEVER-1.pdf",
			want: parser.FilenameIdentifiers{
				Type:   model.DocumentTypeInvoice,
				Number: "RE123456",
				Date:   "20210110",
			},
		},
		{
			name:     "GS number ignored in RE folder",
			folder:   "RE",
			filename: "20210110_GS123456.pdf",
			want: parser.FilenameIdentifiers{
				Type: model.DocumentTypeInvoice,
				Date: "20210110",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ExtractFromFilename(tt.folder, tt.filename)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFromBodyLine(t *testing.T) {
	got := parser.ExtractFromBodyLine("Rechnungsnr. RE123456 bzgl. Auftragsnummer: AMZ-ADA-123-1234567-1234567")
	assert.Equal(t, "RE123456", got.Number)
	assert.Equal(t, "AMZ-ADA-123-1234567-1234567", got.OrderNr)

	got = parser.ExtractFromBodyLine("Gutschrift GS654321 bzgl. Auftragsnummer: REAL-ADA-AB12345")
	assert.Equal(t, "GS654321", got.Number)
	assert.Equal(t, "REAL-ADA-AB12345", got.OrderNr)

	got = parser.ExtractFromBodyLine("Rechnungsnr. RE000001")
	assert.Equal(t, "RE000001", got.Number)
	assert.Empty(t, got.OrderNr)
}

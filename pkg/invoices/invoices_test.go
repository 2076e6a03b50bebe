package invoices_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleemayman/carpet-invoices/pkg/invoices"
)

func TestParseThroughFacade(t *testing.T) {
	p := invoices.NewParser()

	lines := []string{
		"Rechnungsnr. RE123456 bzgl. Auftragsnummer: AU12345",
		"Rechnung",
		"10.01.2021",
		"Pos. Menge ArtNr. Bezeichnung MwSt. Preis Gesamt",
		"1 1 12345-01-02 Teppich 120x180cm 19% 100,00 100,00",
		"Gesamt Netto (19,00%) € 100,00",
		"zzgl. 19,00% MwSt. € 19,00",
		"Gesamtbetrag € 119,00",
	}

	doc, err := p.Parse(lines, "20210110_RE123456_AU12345.pdf", "202101/RE")
	require.NoError(t, err)

	assert.Equal(t, invoices.TypeInvoice, doc.Type)
	assert.True(t, doc.IsComplete)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Teppich 120x180cm", doc.Rows[0].Description)
	assert.Empty(t, doc.ReconciliationWarnings)
}

func TestExtractFromFilenameThroughFacade(t *testing.T) {
	ids := invoices.ExtractFromFilename("202101/RE", "20210110_RE123456_AU1234.pdf")
	assert.Equal(t, invoices.TypeInvoice, ids.Type)
	assert.Equal(t, "RE123456", ids.Number)
	assert.Equal(t, "AU1234", ids.OrderNr)
	assert.Equal(t, "20210110", ids.Date)
}

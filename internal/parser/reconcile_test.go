package parser_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	gdec "github.com/saleemayman/carpet-invoices/internal/decimal"
	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/parser"
)

func amount(s string) *decimal.Decimal {
	d := gdec.MustParseGerman(s)
	return &d
}

func rowsWithTotals(lineTotals ...string) []model.LineItemRow {
	rows := make([]model.LineItemRow, 0, len(lineTotals))
	for i, s := range lineTotals {
		rows = append(rows, model.LineItemRow{
			ItemNr:    i + 1,
			Quantity:  1,
			LineTotal: gdec.MustParseGerman(s),
		})
	}
	return rows
}

func TestReconcile_MatchingTotals(t *testing.T) {
	rows := rowsWithTotals("100,00", "11,99")
	totals := model.DocumentTotals{
		NetTotal:   amount("111,99"),
		VATAmount:  amount("21,28"),
		GrossTotal: amount("133,27"),
	}

	warnings := parser.Reconcile(rows, totals, decimal.RequireFromString("0.01"))
	assert.Empty(t, warnings)
}

func TestReconcile_NetMismatch(t *testing.T) {
	rows := rowsWithTotals("100,00")
	totals := model.DocumentTotals{
		NetTotal:   amount("150,00"),
		VATAmount:  amount("28,50"),
		GrossTotal: amount("178,50"),
	}

	warnings := parser.Reconcile(rows, totals, decimal.RequireFromString("0.01"))
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "does not match net total")
	assert.Contains(t, warnings[0], "difference 50")
}

func TestReconcile_GrossMismatch(t *testing.T) {
	rows := rowsWithTotals("100,00")
	totals := model.DocumentTotals{
		NetTotal:   amount("100,00"),
		VATAmount:  amount("19,00"),
		GrossTotal: amount("200,00"),
	}

	warnings := parser.Reconcile(rows, totals, decimal.RequireFromString("0.01"))
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "does not match gross total")
}

func TestReconcile_ToleranceAbsorbsRounding(t *testing.T) {
	rows := rowsWithTotals("100,00")
	totals := model.DocumentTotals{
		NetTotal:   amount("100,01"),
		VATAmount:  amount("19,00"),
		GrossTotal: amount("119,02"),
	}

	warnings := parser.Reconcile(rows, totals, decimal.RequireFromString("0.01"))
	assert.Empty(t, warnings)
}

func TestReconcile_MissingTotalsSkipChecks(t *testing.T) {
	rows := rowsWithTotals("100,00")

	warnings := parser.Reconcile(rows, model.DocumentTotals{}, decimal.RequireFromString("0.01"))
	assert.Empty(t, warnings)

	warnings = parser.Reconcile(rows, model.DocumentTotals{
		NetTotal: amount("100,00"),
	}, decimal.RequireFromString("0.01"))
	assert.Empty(t, warnings)
}

func TestReconcile_NegativeCreditNoteAmounts(t *testing.T) {
	rows := rowsWithTotals("-5,00")
	totals := model.DocumentTotals{
		NetTotal:   amount("-5,00"),
		VATAmount:  amount("-0,95"),
		GrossTotal: amount("-5,95"),
	}

	warnings := parser.Reconcile(rows, totals, decimal.RequireFromString("0.01"))
	assert.Empty(t, warnings)
}

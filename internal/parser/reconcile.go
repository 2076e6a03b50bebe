package parser

import (
	"fmt"

	"github.com/shopspring/decimal"

	gdec "github.com/saleemayman/carpet-invoices/internal/decimal"
	"github.com/saleemayman/carpet-invoices/internal/model"
)

// Reconcile cross-checks the emitted rows against the footer totals: the
// line-total sum against the net total, and net total plus VAT against the
// gross total. Mismatches outside the relative tolerance yield warnings,
// never errors; missing totals simply skip their comparison, so the result
// is computable even for a zero-row or incomplete document.
func Reconcile(rows []model.LineItemRow, totals model.DocumentTotals, tolerance decimal.Decimal) []string {
	var warnings []string

	lineTotals := make([]decimal.Decimal, 0, len(rows))
	for _, row := range rows {
		lineTotals = append(lineTotals, row.LineTotal)
	}
	rowSum := gdec.Sum(lineTotals)

	if totals.NetTotal != nil && !gdec.WithinRelative(rowSum, *totals.NetTotal, tolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"sum of line totals %s does not match net total %s (difference %s)",
			rowSum, totals.NetTotal, totals.NetTotal.Sub(rowSum)))
	}

	if totals.NetTotal != nil && totals.VATAmount != nil && totals.GrossTotal != nil {
		netPlusVAT := totals.NetTotal.Add(*totals.VATAmount)
		if !gdec.WithinRelative(netPlusVAT, *totals.GrossTotal, tolerance) {
			warnings = append(warnings, fmt.Sprintf(
				"net total %s plus VAT %s does not match gross total %s (difference %s)",
				totals.NetTotal, totals.VATAmount, totals.GrossTotal,
				totals.GrossTotal.Sub(netPlusVAT)))
		}
	}

	return warnings
}

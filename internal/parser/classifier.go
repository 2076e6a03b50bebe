package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	gdec "github.com/saleemayman/carpet-invoices/internal/decimal"
	"github.com/saleemayman/carpet-invoices/internal/model"
)

// pendingRow buffers a partially matched row whose description wrapped onto
// following physical lines.
type pendingRow struct {
	itemNr    string
	quantity  string
	articleID string
	descParts []string
}

// classifier walks the body lines below the document heading and emits row
// records, footer totals and the trailing notes. One classifier handles
// exactly one document and is discarded afterwards.
type classifier struct {
	cfg Config

	tableOpened bool
	tableClosed bool
	pending     *pendingRow

	rows        []model.LineItemRow
	totals      model.DocumentTotals
	notes       []string
	diagnostics []string
}

func newClassifier(cfg Config) *classifier {
	return &classifier{cfg: cfg}
}

// feed classifies one line. The rule order within each state is
// deliberate: grammars are permissive, so the most specific one must win.
func (c *classifier) feed(line string) {
	// Whether the document was fully totaled before this line decides if
	// the line may belong to the notes block.
	totaledBefore := c.totals.Complete()

	// A bare full-line date is honored in any state; the last one wins.
	if m := datePattern.FindStringSubmatch(line); m != nil {
		if d, err := time.Parse(model.DateLayout, m[1]); err == nil {
			c.totals.Date = &d
		}
		return
	}

	if tableHeaderPattern.MatchString(line) && !c.tableClosed {
		c.tableOpened = true
		return
	}

	if c.tableOpened && !c.tableClosed {
		c.feedTableLine(line)
		return
	}

	if c.tableClosed {
		c.feedFooterLine(line, totaledBefore)
	}
}

func (c *classifier) feedTableLine(line string) {
	if c.pending != nil {
		// A last-3-columns line closes the pending row.
		if m := lastColumnsPattern.FindStringSubmatch(line); m != nil {
			c.emitMerged(m)
			c.pending = nil
			return
		}
		// Continuation: no VAT marker anywhere and not the start of a new
		// partial row.
		if !strings.Contains(line, "%") && !partialRowPattern.MatchString(line) {
			c.pending.descParts = append(c.pending.descParts, line)
			return
		}
		// Anything else abandons the pending row and re-enters the normal
		// row rules below.
		c.diag("discarded pending row %s without closing price columns", c.pending.itemNr)
		c.pending = nil
	}

	// Most specific first: the 7-field grammar, then the article-less
	// variants (bare before ambiguous, so a lone VAT token is never taken
	// for a description), then the wrapped-description partial, and the
	// net-total footer closing the table.
	if m := fullRowPattern.FindStringSubmatch(line); m != nil {
		c.emitRow(m[1], m[2], m[3], m[4], m[5], m[6], m[7])
		return
	}
	if m := bareRowPattern.FindStringSubmatch(line); m != nil {
		c.emitRow(m[1], m[2], "", "", m[3], m[4], m[5])
		return
	}
	if m := ambiguousRowPattern.FindStringSubmatch(line); m != nil {
		c.emitRow(m[1], m[2], "", m[3], m[4], m[5], m[6])
		return
	}
	if m := partialRowPattern.FindStringSubmatch(line); m != nil {
		c.pending = &pendingRow{
			itemNr:    m[1],
			quantity:  m[2],
			articleID: m[3],
			descParts: []string{m[4]},
		}
		return
	}
	if m := netTotalPattern.FindStringSubmatch(line); m != nil {
		c.setAmount(&c.totals.NetTotal, m[1], "net_total")
		c.tableClosed = true
		return
	}
	// Unrecognized lines inside the table (customer number, blank filler)
	// are skipped.
}

func (c *classifier) feedFooterLine(line string, totaledBefore bool) {
	// The three footer grammars are independent and order-insensitive; any
	// may reappear, the last occurrence wins.
	if m := netTotalPattern.FindStringSubmatch(line); m != nil {
		c.setAmount(&c.totals.NetTotal, m[1], "net_total")
		return
	}
	if m := vatAmountPattern.FindStringSubmatch(line); m != nil {
		c.setAmount(&c.totals.VATAmount, m[1], "vat_amount")
		return
	}
	if m := grossTotalPattern.FindStringSubmatch(line); m != nil {
		c.setAmount(&c.totals.GrossTotal, m[1], "total")
		return
	}
	if totaledBefore && !c.cfg.denylisted(line) {
		c.notes = append(c.notes, line)
	}
}

// emitRow builds a typed row from the captured grammar groups. Rows whose
// mandatory numeric fields fail to parse are rejected with a diagnostic
// instead of being emitted half-filled.
func (c *classifier) emitRow(itemNr, quantity, articleID, description, vat, unitPrice, lineTotal string) {
	row, err := buildRow(itemNr, quantity, articleID, description, vat, unitPrice, lineTotal)
	if err != nil {
		c.diag("rejected row %s: %v", itemNr, err)
		return
	}
	c.rows = append(c.rows, row)
}

// emitMerged combines the buffered partial row with the closing
// last-3-columns groups. Description fragments join in line order with
// single spaces.
func (c *classifier) emitMerged(m []string) {
	p := c.pending
	c.emitRow(p.itemNr, p.quantity, p.articleID, strings.Join(p.descParts, " "), m[1], m[2], m[3])
}

func buildRow(itemNr, quantity, articleID, description, vat, unitPrice, lineTotal string) (model.LineItemRow, error) {
	nr, err := strconv.Atoi(itemNr)
	if err != nil {
		return model.LineItemRow{}, fmt.Errorf("item_nr %q: %w", itemNr, err)
	}

	// The quantity may carry a unit word ("1 stk"); only the leading count
	// matters.
	qty, err := strconv.Atoi(strings.Fields(quantity)[0])
	if err != nil {
		return model.LineItemRow{}, fmt.Errorf("quantity %q: %w", quantity, err)
	}

	price, err := gdec.ParseGerman(unitPrice)
	if err != nil {
		return model.LineItemRow{}, fmt.Errorf("item_price %q: %w", unitPrice, err)
	}

	total, err := gdec.ParseGerman(lineTotal)
	if err != nil {
		return model.LineItemRow{}, fmt.Errorf("total_price %q: %w", lineTotal, err)
	}

	return model.LineItemRow{
		ItemNr:      nr,
		Quantity:    qty,
		ArticleID:   articleID,
		Description: description,
		VATRate:     vat,
		UnitPrice:   price,
		LineTotal:   total,
	}, nil
}

func (c *classifier) setAmount(dst **decimal.Decimal, raw, field string) {
	d, err := gdec.ParseGerman(raw)
	if err != nil {
		c.diag("unparseable %s amount %q: %v", field, raw, err)
		return
	}
	*dst = &d
}

func (c *classifier) diag(format string, args ...interface{}) {
	c.diagnostics = append(c.diagnostics, fmt.Sprintf(format, args...))
}

// finalize freezes the classifier state into its document fields. An
// unclosed table or missing totals demote the document to incomplete with
// an empty row table, never to an error.
func (c *classifier) finalize() (rows []model.LineItemRow, totals model.DocumentTotals, notes string, complete bool, diagnostics []string) {
	complete = c.tableClosed && c.totals.Complete()
	if complete {
		rows = c.rows
	} else {
		c.diag("incomplete document: table closed=%t, totals complete=%t", c.tableClosed, c.totals.Complete())
	}
	if c.pending != nil {
		c.diag("pending row %s never closed", c.pending.itemNr)
	}
	return rows, c.totals, strings.Join(c.notes, " "), complete, c.diagnostics
}

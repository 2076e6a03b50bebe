package parser

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// The row and footer grammars below mirror the fixed layout of the external
// carpet supplier's invoice template. All amounts follow the German numeric
// convention (-?[.0-9]{1,6},[0-9]{2}); quantities may carry a lowercase unit
// word such as "stk"; item numbers are 1-3 digits; VAT tokens look like
// "19%" or "19,00%".
var (
	// Document heading synonyms. A document without one of these lines
	// cannot be parsed at all.
	headingInvoice    = "Rechnung"
	headingCreditNote = "RECHNUNGSKORREKTUR"

	// pageMarkerPattern ends the identifier region above the heading.
	pageMarkerPattern = regexp.MustCompile(`^Seite:`)

	// datePattern matches a bare full-line calendar date inside the body.
	datePattern = regexp.MustCompile(`^([0-9]{2}\.[0-9]{2}\.[0-9]{4})$`)

	// tableHeaderPattern opens the item grid ("Pos. Menge ArtNr ...").
	tableHeaderPattern = regexp.MustCompile(`(?i)^Pos\.\sMenge`)

	// fullRowPattern: item nr, quantity (optional unit word), article code,
	// description, VAT, unit price, line total. The article alternatives go
	// most-specific-first; the lazy description stops at the VAT token.
	fullRowPattern = regexp.MustCompile(
		`^([0-9]{1,3})` +
			`\s([0-9]{1,3}(?:\s[stück]{3,5})?)` +
			`\s([0-9]{5}-[0-9]{2}-[0-9]{2}|H[0-9]{5}|[^\s]+)` +
			`\s(.*?)` +
			`\s([0-9]{1,2}(?:,00)?%)` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})$`)

	// bareRowPattern: neither article nor description, just item nr,
	// quantity, optional VAT and the two prices. Must be tried before
	// ambiguousRowPattern, which would otherwise capture a lone VAT token
	// as the description.
	bareRowPattern = regexp.MustCompile(
		`^([0-9]{1,3})` +
			`\s([0-9]{1,3}(?:\s[stück]{3,5})?)` +
			`(?:\s([0-9]{1,2}(?:,00)?%))?` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})$`)

	// ambiguousRowPattern: one free-text column where article and
	// description cannot be told apart; the whole span becomes the
	// description.
	ambiguousRowPattern = regexp.MustCompile(
		`^([0-9]{1,3})` +
			`\s([0-9]{1,3}(?:\s[stück]{3,5})?)` +
			`\s(.*?)` +
			`(?:\s([0-9]{1,2}(?:,00)?%))?` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})$`)

	// partialRowPattern: a row whose description wrapped onto following
	// lines, so the price columns are missing. Tried last among the row
	// grammars because any price-terminated line would also match it.
	partialRowPattern = regexp.MustCompile(
		`^([0-9]{1,3})` +
			`\s([0-9]{1,3}(?:\s[stück]{3,5})?)` +
			`\s([0-9]{5}-[0-9]{2}-[0-9]{2}|H[0-9]{5}|[^\s]+)` +
			`\s(.*)$`)

	// lastColumnsPattern closes a pending row: optional VAT plus the two
	// price columns.
	lastColumnsPattern = regexp.MustCompile(
		`^([0-9]{1,2}(?:,00)?%)` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})` +
			`\s(-?[\.0-9]{1,6},[0-9]{2})$`)

	// Footer grammars. Any of them may appear more than once; the last
	// occurrence wins.
	netTotalPattern = regexp.MustCompile(
		`^Gesamt\sNetto\s` +
			`(?:\([0-9]{1,2}(?:,00)?%\)\s)?` +
			`(?:€\s)?(-?[\.0-9]{1,6},[0-9]{2})(?:\s€)?.*$`)

	vatAmountPattern = regexp.MustCompile(
		`^zzgl(?:\.)?\s(?:(?:\()?[0-9]{1,2}(?:,00)?%(?:\))?\s)?Mw(?:\.)?St(?:\.)?\s` +
			`(?:€\s)?(-?[\.0-9]{1,6},[0-9]{2})(?:\s€)?.*$`)

	grossTotalPattern = regexp.MustCompile(
		`^Gesamtbetrag\s(?:€\s)?(-?[\.0-9]{1,6},[0-9]{2})(?:\s€)?.*$`)
)

// Identifier grammars. The leading greedy prefix makes the last occurrence
// in the string win, matching how the filenames embed the numbers at the end.
var (
	fileDatePattern        = regexp.MustCompile(`^(?:.*)?(20[0-9]{6})`)
	invoiceNrPattern       = regexp.MustCompile(`^(?:.*)?(RE[0-9]{6})`)
	reimbursementNrPattern = regexp.MustCompile(`^(?:.*)?(GS[0-9]{6})`)

	amazonOrderPattern  = regexp.MustCompile(`^(?:.*)?(AMZ-ADA-[0-9]{3}-[0-9]{7}-[0-9]{7})`)
	ebayOrderPattern    = regexp.MustCompile(`^(?:.*)?(EBAY-DE-ADA-[0-9]{2}-[0-9]{5}-[0-9]{5})`)
	shopifyOrderPattern = regexp.MustCompile(`^(?:.*)?(SHOPIFY-ADA-[0-9]{13})`)
	auOrderPattern      = regexp.MustCompile(`^(?:.*)?(AU[0-9]{4,5})`)
	realOrderPattern    = regexp.MustCompile(`^(?:.*)?(REAL-ADA-[A-Z0-9]{7})`)

	// filenameOrderPatterns and bodyOrderPatterns are tried top to bottom;
	// the first matching channel wins. The REAL channel only ever appears
	// in body text, never in filenames.
	filenameOrderPatterns = []*regexp.Regexp{
		amazonOrderPattern,
		ebayOrderPattern,
		shopifyOrderPattern,
		auOrderPattern,
	}
	bodyOrderPatterns = []*regexp.Regexp{
		auOrderPattern,
		realOrderPattern,
		shopifyOrderPattern,
		amazonOrderPattern,
		ebayOrderPattern,
	}
)

// Config carries the tunable parts of the parser. The pattern tables are
// fixed; only the reconciliation tolerance and the notes denylist vary
// between deployments. A Config is treated as immutable once handed to a
// Parser.
type Config struct {
	// ReconcileTolerance is the relative tolerance for the totals
	// cross-checks: |a-b| <= tol * max(|a|,|b|).
	ReconcileTolerance decimal.Decimal

	// NotesDenylist drops boilerplate footer lines (thank-you line, seller
	// tax-ID line) from the notes block.
	NotesDenylist []*regexp.Regexp
}

// DefaultConfig returns the configuration matching the reference documents.
// The 0.5 tolerance reproduces the historical behavior; tighten it per
// deployment if the supplier's rounding turns out to be stable.
func DefaultConfig() Config {
	return Config{
		ReconcileTolerance: decimal.RequireFromString("0.5"),
		NotesDenylist: []*regexp.Regexp{
			regexp.MustCompile(`^Vielen Dank`),
			regexp.MustCompile(`^.*DE310123456`),
		},
	}
}

func (c Config) denylisted(line string) bool {
	for _, p := range c.NotesDenylist {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

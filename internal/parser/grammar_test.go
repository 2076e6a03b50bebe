package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullRowPattern(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		groups []string
	}{
		{
			name:   "article with dashes and unit word",
			line:   "1 1 stk 12345-12-12 Description of some item 050x100 cm 19% 1,11 1,11",
			groups: []string{"1", "1 stk", "12345-12-12", "Description of some item 050x100 cm", "19%", "1,11", "1,11"},
		},
		{
			name:   "H-prefixed article",
			line:   "2 1 stk H12345 Other description 100x100 cm rund 19% 2,00 2,00",
			groups: []string{"2", "1 stk", "H12345", "Other description 100x100 cm rund", "19%", "2,00", "2,00"},
		},
		{
			name:   "free-form article token",
			line:   "3 1 Versand GLS-DB 19% 10,00 10,00",
			groups: []string{"3", "1", "Versand", "GLS-DB", "19%", "10,00", "10,00"},
		},
		{
			name:   "negative amounts and thousands separator",
			line:   "12 3 stk 99999-01-02 Big carpet 19,00% -1.234,56 -3.703,68",
			groups: []string{"12", "3 stk", "99999-01-02", "Big carpet", "19,00%", "-1.234,56", "-3.703,68"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fullRowPattern.FindStringSubmatch(tt.line)
			require.NotNil(t, m)
			assert.Equal(t, tt.groups, m[1:])
		})
	}
}

func TestFullRowPattern_Rejects(t *testing.T) {
	lines := []string{
		"4 1 stk 12345-05-06 A very long description of some item", // no prices
		"5 1 19% 0,00 0,00",              // nothing between quantity and VAT
		"Gesamt Netto (19,00%) € 111,99", // footer
		"19% 88,88 88,88",                // last-columns continuation
	}
	for _, line := range lines {
		assert.Nil(t, fullRowPattern.FindStringSubmatch(line), "line %q", line)
	}
}

func TestBareRowPattern(t *testing.T) {
	m := bareRowPattern.FindStringSubmatch("5 1 19% 0,00 0,00")
	require.NotNil(t, m)
	assert.Equal(t, []string{"5", "1", "19%", "0,00", "0,00"}, m[1:])

	// VAT is optional.
	m = bareRowPattern.FindStringSubmatch("7 2 1,50 3,00")
	require.NotNil(t, m)
	assert.Equal(t, "", m[3])

	// A free-text column disqualifies the line.
	assert.Nil(t, bareRowPattern.FindStringSubmatch("6 1 Versand 19% 10,00 10,00"))
}

func TestAmbiguousRowPattern(t *testing.T) {
	m := ambiguousRowPattern.FindStringSubmatch("6 1 Versand 19% 10,00 10,00")
	require.NotNil(t, m)
	assert.Equal(t, []string{"6", "1", "Versand", "19%", "10,00", "10,00"}, m[1:])

	// Multi-word span stays in one group.
	m = ambiguousRowPattern.FindStringSubmatch("3 1 Versand GLS-DB 19% 10,00 10,00")
	require.NotNil(t, m)
	assert.Equal(t, "Versand GLS-DB", m[3])
}

func TestPartialRowPattern(t *testing.T) {
	m := partialRowPattern.FindStringSubmatch("4 1 stk 12345-05-06 A very long description of some item")
	require.NotNil(t, m)
	assert.Equal(t, "12345-05-06", m[3])
	assert.Equal(t, "A very long description of some item", m[4])

	// Continuation fragments never start with an item number.
	assert.Nil(t, partialRowPattern.FindStringSubmatch("which extends to next line 100x100 cm"))
}

func TestLastColumnsPattern(t *testing.T) {
	m := lastColumnsPattern.FindStringSubmatch("19% 88,88 88,88")
	require.NotNil(t, m)
	assert.Equal(t, []string{"19%", "88,88", "88,88"}, m[1:])

	assert.Nil(t, lastColumnsPattern.FindStringSubmatch("1 1 stk X 19% 1,00 1,00"))
}

func TestFooterPatterns(t *testing.T) {
	tests := []struct {
		line    string
		pattern string
		amount  string
	}{
		{"Gesamt Netto (19,00%) € 111,99", "net", "111,99"},
		{"Gesamt Netto (19%) € -5,00", "net", "-5,00"},
		{"Gesamt Netto 100,00", "net", "100,00"},
		{"zzgl. 19,00% MwSt. € 21,28", "vat", "21,28"},
		{"zzgl 19% MwSt € 1,00", "vat", "1,00"},
		{"zzgl MwSt 0,00", "vat", "0,00"},
		{"Gesamtbetrag € 133,27", "gross", "133,27"},
		{"Gesamtbetrag 133,27 €", "gross", "133,27"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var m []string
			switch tt.pattern {
			case "net":
				m = netTotalPattern.FindStringSubmatch(tt.line)
			case "vat":
				m = vatAmountPattern.FindStringSubmatch(tt.line)
			case "gross":
				m = grossTotalPattern.FindStringSubmatch(tt.line)
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.amount, m[1])
		})
	}
}

func TestTableHeaderPattern_CaseInsensitive(t *testing.T) {
	assert.True(t, tableHeaderPattern.MatchString("Pos. Menge ArtNr Bezeichnung Ust. E-Preis G-Preis"))
	assert.True(t, tableHeaderPattern.MatchString("POS. MENGE ARTNR"))
	assert.False(t, tableHeaderPattern.MatchString("Position Menge"))
}

func TestDatePattern_FullLineOnly(t *testing.T) {
	assert.True(t, datePattern.MatchString("10.01.2021"))
	assert.False(t, datePattern.MatchString("Datum: 10.01.2021"))
	assert.False(t, datePattern.MatchString("10.01.2021 Rechnung"))
}

func TestDefaultConfig_Denylist(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.denylisted("Vielen Dank für Ihren Auftrag."))
	assert.True(t, cfg.denylisted("Ihre Ust-ID: DE310123456"))
	assert.False(t, cfg.denylisted("Notes about the invoice"))
}

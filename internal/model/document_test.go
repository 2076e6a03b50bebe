package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleemayman/carpet-invoices/internal/model"
)

func TestDocumentTotals_Complete(t *testing.T) {
	var totals model.DocumentTotals
	assert.False(t, totals.Complete())

	net := decimal.RequireFromString("111.99")
	vat := decimal.RequireFromString("21.28")
	gross := decimal.RequireFromString("133.27")
	date := time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC)

	totals.NetTotal = &net
	totals.VATAmount = &vat
	totals.GrossTotal = &gross
	assert.False(t, totals.Complete(), "date still missing")

	totals.Date = &date
	assert.True(t, totals.Complete())
}

func TestDateLayout(t *testing.T) {
	parsed, err := time.Parse(model.DateLayout, "10.01.2021")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC), parsed)
}

func TestLineItemRow_JSONFieldNames(t *testing.T) {
	row := model.LineItemRow{
		ItemNr:      1,
		Quantity:    2,
		ArticleID:   "12345-01-02",
		Description: "Carpet",
		VATRate:     "19%",
		UnitPrice:   decimal.RequireFromString("50"),
		LineTotal:   decimal.RequireFromString("100"),
	}

	raw, err := json.Marshal(row)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{
		"item_nr", "quantity", "article_id", "description",
		"vat", "item_price", "total_price",
	} {
		assert.Contains(t, fields, key)
	}
}

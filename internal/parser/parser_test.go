package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishInvoice = `ACME SUPPLIES GMBH
Invoice Number: INV-2024-0042
Invoice Date: 2024-03-15
Sold By: Acme Supplies GmbH
Bill To: Widget Factory Ltd

Description Qty Unit Price Amount
Steel Bolts 16 4.00 64.00
Copper Wire 2 6.08 12.16

Subtotal: EUR 76.16
Tax: EUR 14.47
Grand Total: EUR 90.63
`

func TestParseEnglishInvoice(t *testing.T) {
	inv := Parse(englishInvoice)

	assert.Equal(t, "INV-2024-0042", inv.InvoiceID)
	assert.Equal(t, "2024-03-15", inv.InvoiceDate)
	assert.Equal(t, "Acme Supplies GmbH", inv.SellerName)
	assert.Equal(t, "Widget Factory Ltd", inv.BuyerName)
	assert.Equal(t, "EUR", inv.Currency)

	require.NotNil(t, inv.TotalAmount)
	assert.Equal(t, 76.16, *inv.TotalAmount)
	require.NotNil(t, inv.TaxAmount)
	assert.Equal(t, 14.47, *inv.TaxAmount)
	require.NotNil(t, inv.TotalWithTax)
	assert.Equal(t, 90.63, *inv.TotalWithTax)
}

const germanInvoice = `Bestellung AUFNR 12345
Kundenanschrift
Freiburg Gesundheitszentrum
Musterstraße 12
79098 Freiburg

Gesamtwert EUR 216,00
MwSt. 19,00% EUR 41,04
Gesamtwert inkl. MwSt. EUR 257,04
`

func TestParseGermanInvoice(t *testing.T) {
	inv := Parse(germanInvoice)

	assert.Equal(t, "AUFNR12345", inv.InvoiceID)
	assert.Equal(t, "Freiburg Gesundheitszentrum", inv.BuyerName)
	assert.Equal(t, "EUR", inv.Currency)

	require.NotNil(t, inv.TotalAmount)
	assert.Equal(t, 216.00, *inv.TotalAmount)
	require.NotNil(t, inv.TaxAmount)
	assert.Equal(t, 41.04, *inv.TaxAmount)
	require.NotNil(t, inv.TotalWithTax)
	assert.Equal(t, 257.04, *inv.TotalWithTax)
}

func TestParseGarbageTextYieldsEmptyRecord(t *testing.T) {
	inv := Parse("lorem ipsum dolor sit amet\nconsectetur adipiscing elit")

	assert.Empty(t, inv.InvoiceID)
	assert.Empty(t, inv.BuyerName)
	assert.Empty(t, inv.SellerName)
	assert.Empty(t, inv.Currency)
	assert.Nil(t, inv.TotalAmount)
	assert.Nil(t, inv.TaxAmount)
	assert.Nil(t, inv.TotalWithTax)
	assert.Empty(t, inv.LineItems)
}

func TestParseFirstMatchWins(t *testing.T) {
	text := `Invoice Number: FIRST-001
Total: 100.00
Invoice Number: SECOND-002
Total: 999.99
`
	inv := Parse(text)

	assert.Equal(t, "FIRST-001", inv.InvoiceID)
	require.NotNil(t, inv.TotalAmount)
	assert.Equal(t, 100.00, *inv.TotalAmount)
}

func TestParseSubtotalNotConsumedByTotalLabel(t *testing.T) {
	text := `Subtotal: 90.00
Tax: 10.00
Grand Total: 100.00
`
	inv := Parse(text)

	require.NotNil(t, inv.TotalAmount)
	assert.Equal(t, 90.00, *inv.TotalAmount)
	require.NotNil(t, inv.TotalWithTax)
	assert.Equal(t, 100.00, *inv.TotalWithTax)
}

func TestParseCurrencyLabel(t *testing.T) {
	inv := Parse("Currency: usd\nTotal: 50.00")
	assert.Equal(t, "USD", inv.Currency)
}

func TestParseUnparseableAmountLeftUnset(t *testing.T) {
	// A trailing separator is malformed, not zero.
	inv := Parse("Total: 216,\n")
	assert.Nil(t, inv.TotalAmount)
}

func TestParseLineItems(t *testing.T) {
	text := `Invoice Number: INV-7
Description Qty Price Amount
Steel Bolts 16 4.00 64.00
Copper Wire 2 6.08 12.16
Total: 76.16
`
	inv := Parse(text)

	require.Len(t, inv.LineItems, 2)
	first := inv.LineItems[0]
	assert.Equal(t, "Steel Bolts", first.Description)
	assert.Equal(t, 16.0, first.Quantity)
	assert.Equal(t, 4.00, first.UnitPrice)
	assert.Equal(t, 64.00, first.LineTotal)

	second := inv.LineItems[1]
	assert.Equal(t, "Copper Wire", second.Description)
	assert.Equal(t, 12.16, second.LineTotal)
}

func TestParseLineItemsSkipMalformedRows(t *testing.T) {
	text := `Widget 2 3.50 7.00
2 3.50 7.00
Only two 1.00 2.00
Date row 2024-01-15 1 2 3
`
	inv := Parse(text)

	// Only the first line has a description and three standalone numbers.
	require.Len(t, inv.LineItems, 1)
	assert.Equal(t, "Widget", inv.LineItems[0].Description)
}

func TestParseGluedDigitsNotTreatedAsAmounts(t *testing.T) {
	inv := Parse("Steel Bolts M8 16 4.00 64.00")

	require.Len(t, inv.LineItems, 1)
	item := inv.LineItems[0]
	assert.Equal(t, "Steel Bolts M8", item.Description)
	assert.Equal(t, 16.0, item.Quantity)
	assert.Equal(t, 4.00, item.UnitPrice)
	assert.Equal(t, 64.00, item.LineTotal)
}

func TestParseValueOnFollowingLine(t *testing.T) {
	text := `Bill To:
Widget Factory Ltd
`
	inv := Parse(text)
	assert.Equal(t, "Widget Factory Ltd", inv.BuyerName)
}

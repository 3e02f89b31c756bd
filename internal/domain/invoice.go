package domain

// LineItem represents a single purchased line within an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Invoice is the canonical in-memory representation of one invoice's fields.
//
// Every field is optional. String fields use the empty string as "absent" by
// convention (the extractor and the coercion layer never produce a meaningful
// empty string). Monetary amounts are pointers so that "missing" stays
// distinguishable from "explicitly zero" when validation runs.
type Invoice struct {
	InvoiceID    string     `json:"invoice_id"`
	InvoiceDate  string     `json:"invoice_date"` // Format: YYYY-MM-DD
	BuyerName    string     `json:"buyer_name"`
	SellerName   string     `json:"seller_name"`
	TotalAmount  *float64   `json:"total_amount"`
	TaxAmount    *float64   `json:"tax_amount"`
	TotalWithTax *float64   `json:"total_with_tax"`
	Currency     string     `json:"currency"` // ISO-4217 alphabetic code (e.g., "EUR", "USD")
	LineItems    []LineItem `json:"line_items"`
}

// NewInvoice creates a new invoice with default values
func NewInvoice() *Invoice {
	return &Invoice{
		LineItems: make([]LineItem, 0),
	}
}

// AddLineItem adds a new line item to the invoice
func (i *Invoice) AddLineItem(item LineItem) {
	i.LineItems = append(i.LineItems, item)
}

// Amount returns a pointer to a copy of v, for building invoices literally.
func Amount(v float64) *float64 {
	return &v
}

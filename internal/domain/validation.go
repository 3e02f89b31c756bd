package domain

import "strings"

// MissingFieldPrefix tags errors emitted by the required-field rules.
// Summary building keys its histogram off this prefix.
const MissingFieldPrefix = "missing_field:"

// ValidationResult holds the outcome of validating a single invoice.
// Valid is true iff Errors is empty.
type ValidationResult struct {
	InvoiceID string   `json:"invoice_id"`
	Valid     bool     `json:"valid"`
	Errors    []string `json:"errors"`
}

// MissingFields returns the field names of all missing_field errors.
func (r ValidationResult) MissingFields() []string {
	var fields []string
	for _, e := range r.Errors {
		if name, ok := strings.CutPrefix(e, MissingFieldPrefix); ok {
			fields = append(fields, name)
		}
	}
	return fields
}

// Summary aggregates validation results across a batch of invoices.
type Summary struct {
	TotalInvoices       int            `json:"total_invoices"`
	ValidInvoices       int            `json:"valid_invoices"`
	InvalidInvoices     int            `json:"invalid_invoices"`
	MissingCountByField map[string]int `json:"missing_count_by_field"`
}

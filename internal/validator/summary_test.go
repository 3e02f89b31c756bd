package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
)

func TestSummarizeBatch(t *testing.T) {
	results := []domain.ValidationResult{
		{InvoiceID: "A", Valid: true, Errors: []string{}},
		{InvoiceID: "B", Valid: true, Errors: []string{}},
		{InvoiceID: "C", Valid: false, Errors: []string{"missing_field:buyer_name"}},
	}

	summary := Summarize(results)

	assert.Equal(t, 3, summary.TotalInvoices)
	assert.Equal(t, 2, summary.ValidInvoices)
	assert.Equal(t, 1, summary.InvalidInvoices)
	assert.Equal(t, map[string]int{"buyer_name": 1}, summary.MissingCountByField)
}

func TestSummarizeCountsRepeatedMissingFields(t *testing.T) {
	results := []domain.ValidationResult{
		{InvoiceID: "A", Valid: false, Errors: []string{"missing_field:currency", "bad_format:invoice_date"}},
		{InvoiceID: "B", Valid: false, Errors: []string{"missing_field:currency", "missing_field:invoice_id"}},
	}

	summary := Summarize(results)

	assert.Equal(t, 2, summary.InvalidInvoices)
	assert.Equal(t, map[string]int{"currency": 2, "invoice_id": 1}, summary.MissingCountByField)
}

func TestSummarizeEmptyBatch(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalInvoices)
	assert.Zero(t, summary.ValidInvoices)
	assert.Zero(t, summary.InvalidInvoices)
	assert.NotNil(t, summary.MissingCountByField)
	assert.Empty(t, summary.MissingCountByField)
}

func TestSummarizeIgnoresNonMissingTags(t *testing.T) {
	results := []domain.ValidationResult{
		{InvoiceID: "A", Valid: false, Errors: []string{"business_rule:total_mismatch", "invalid_numeric:tax_amount"}},
	}

	summary := Summarize(results)
	assert.Empty(t, summary.MissingCountByField)
}

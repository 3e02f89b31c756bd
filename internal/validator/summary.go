package validator

import "github.com/ridwanfathin/invoice-qc-service/internal/domain"

// Summarize reduces a batch of validation results to aggregate counts and a
// missing-field histogram. Counts are order-independent; an empty batch
// yields zero counts and an empty (non-nil) histogram.
func Summarize(results []domain.ValidationResult) domain.Summary {
	summary := domain.Summary{
		TotalInvoices:       len(results),
		MissingCountByField: make(map[string]int),
	}
	for _, r := range results {
		if r.Valid {
			summary.ValidInvoices++
		} else {
			summary.InvalidInvoices++
		}
		for _, field := range r.MissingFields() {
			summary.MissingCountByField[field]++
		}
	}
	return summary
}

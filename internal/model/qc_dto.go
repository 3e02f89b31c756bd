package model

import "github.com/ridwanfathin/invoice-qc-service/internal/domain"

// ValidateBatchResponse is the response to a JSON batch validation request:
// one result per submitted invoice plus the batch summary.
type ValidateBatchResponse struct {
	Results []domain.ValidationResult `json:"results"`
	Summary domain.Summary            `json:"summary"`
}

// QCReport is the outcome of a full extract-and-validate run over one PDF.
// It is both the HTTP response body and the shape persisted by the report
// repository.
type QCReport struct {
	Extracted *domain.Invoice         `json:"extracted"`
	Result    domain.ValidationResult `json:"result"`
	Summary   domain.Summary          `json:"summary"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

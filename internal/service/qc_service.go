package service

import (
	"context"
	"fmt"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
	"github.com/ridwanfathin/invoice-qc-service/internal/model"
	"github.com/ridwanfathin/invoice-qc-service/internal/repository"
)

// InvoiceQCServicer defines the interface for invoice quality-control services
type InvoiceQCServicer interface {
	// ValidateInvoice validates a single invoice, typed or as a decoded JSON map
	ValidateInvoice(ctx context.Context, input interface{}) (domain.ValidationResult, error)

	// ValidateBatch validates a batch of decoded JSON invoices and summarizes the results
	ValidateBatch(ctx context.Context, invoices []map[string]interface{}) ([]domain.ValidationResult, domain.Summary, error)

	// ExtractInvoice extracts invoice fields from a PDF document
	ExtractInvoice(ctx context.Context, pdfData []byte) (*domain.Invoice, error)

	// ExtractAndValidate runs the full pipeline over a PDF document
	ExtractAndValidate(ctx context.Context, pdfData []byte) (*model.QCReport, error)

	// SetReportRepository sets the repository for persisting QC artifacts
	SetReportRepository(repo repository.ReportRepository)

	// Shutdown gracefully shuts down the service
	Shutdown()
}

// ProcessingError represents an error that occurred during invoice QC processing
type ProcessingError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

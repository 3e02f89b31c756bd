package repository

import (
	"context"
	"fmt"

	"github.com/ridwanfathin/invoice-qc-service/internal/model"
)

// ReportRepository defines the interface for persisting QC artifacts
type ReportRepository interface {
	// StoreDocument stores an uploaded source document and returns its identifier
	StoreDocument(ctx context.Context, data []byte) (string, error)

	// StoreReport stores a full-run QC report and returns its identifier
	StoreReport(ctx context.Context, report *model.QCReport) (string, error)
}

// RepositoryError represents an error that occurred within a repository
type RepositoryError struct {
	// Op is the operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

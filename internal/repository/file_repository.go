package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ridwanfathin/invoice-qc-service/internal/model"
)

// FileRepository implements ReportRepository using the local filesystem.
// Reports and uploaded documents are written under the base directory as
// timestamped files; there is no indexing or lookup, the files exist for
// audit and debugging only.
type FileRepository struct {
	baseDir string
	mutex   sync.Mutex
}

// NewFileRepository creates a new file-based report repository
func NewFileRepository(baseDir string) (*FileRepository, error) {
	// Ensure base directory exists
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, &RepositoryError{
			Op:  "create_repository",
			Err: fmt.Errorf("failed to create base directory: %w", err),
		}
	}

	// Create subdirectories
	for _, dir := range []string{"documents", "reports"} {
		subDir := filepath.Join(baseDir, dir)
		if err := os.MkdirAll(subDir, 0755); err != nil {
			return nil, &RepositoryError{
				Op:  "create_repository",
				Err: fmt.Errorf("failed to create %s directory: %w", dir, err),
			}
		}
	}

	return &FileRepository{
		baseDir: baseDir,
	}, nil
}

// StoreDocument stores an uploaded PDF in the filesystem and returns its identifier
func (r *FileRepository) StoreDocument(ctx context.Context, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", &RepositoryError{
			Op:  "store_document",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	docID := fmt.Sprintf("%d", time.Now().UnixNano())

	filePath := filepath.Join(r.baseDir, "documents", docID+".pdf")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", &RepositoryError{
			Op:  "store_document",
			Err: fmt.Errorf("failed to write document file: %w", err),
		}
	}

	return docID, nil
}

// StoreReport stores a QC report as an indented JSON file and returns its identifier
func (r *FileRepository) StoreReport(ctx context.Context, report *model.QCReport) (string, error) {
	select {
	case <-ctx.Done():
		return "", &RepositoryError{
			Op:  "store_report",
			Err: ctx.Err(),
		}
	default:
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	reportID := fmt.Sprintf("%d", time.Now().UnixNano())
	if report.Extracted != nil && report.Extracted.InvoiceID != "" {
		reportID = fmt.Sprintf("%s_%s", report.Extracted.InvoiceID, reportID)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &RepositoryError{
			Op:  "store_report",
			Err: fmt.Errorf("failed to marshal report: %w", err),
		}
	}

	filePath := filepath.Join(r.baseDir, "reports", reportID+".json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", &RepositoryError{
			Op:  "store_report",
			Err: fmt.Errorf("failed to write report file: %w", err),
		}
	}

	return reportID, nil
}

package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/model"
	"github.com/ridwanfathin/invoice-qc-service/internal/parser"
	"github.com/ridwanfathin/invoice-qc-service/internal/pdftext"
	"github.com/ridwanfathin/invoice-qc-service/internal/repository"
	"github.com/ridwanfathin/invoice-qc-service/internal/validator"
)

// QCProcessorService implements InvoiceQCServicer over the extraction and
// validation core. Per-invoice work is pure computation; the worker pool
// only bounds how much of it runs concurrently.
type QCProcessorService struct {
	engine      *validator.Engine
	maxWorkers  int
	workerQueue chan struct{}
	reports     repository.ReportRepository
	log         zerolog.Logger
}

// NewQCProcessorService creates a new invoice QC processor service
func NewQCProcessorService(engine *validator.Engine, maxWorkers int) *QCProcessorService {
	if maxWorkers <= 0 {
		maxWorkers = 5 // Default to 5 workers
	}

	return &QCProcessorService{
		engine:      engine,
		maxWorkers:  maxWorkers,
		workerQueue: make(chan struct{}, maxWorkers),
		log:         logger.WithComponent("qc-processor"),
	}
}

// SetReportRepository sets the repository for persisting QC artifacts
func (s *QCProcessorService) SetReportRepository(repo repository.ReportRepository) {
	s.reports = repo
}

// ValidateInvoice validates one invoice. The input may be a typed record or
// a decoded JSON field map; anything else surfaces
// validator.ErrInvalidInputKind untouched.
func (s *QCProcessorService) ValidateInvoice(ctx context.Context, input interface{}) (domain.ValidationResult, error) {
	if err := s.acquireWorker(ctx, "validate_invoice"); err != nil {
		return domain.ValidationResult{}, err
	}
	defer s.releaseWorker()

	result, err := s.engine.Validate(input)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	s.log.Debug().
		Str("invoice_id", result.InvoiceID).
		Bool("valid", result.Valid).
		Int("error_count", len(result.Errors)).
		Msg("Invoice validated")

	return result, nil
}

// ValidateBatch validates every invoice in the batch in parallel and
// aggregates the results. Per-invoice validation calls are independent, so
// result order matches input order regardless of scheduling. A malformed
// invoice only degrades its own result; it never aborts the batch.
func (s *QCProcessorService) ValidateBatch(ctx context.Context, invoices []map[string]interface{}) ([]domain.ValidationResult, domain.Summary, error) {
	var wg sync.WaitGroup
	results := make([]domain.ValidationResult, len(invoices))

	for i, inv := range invoices {
		wg.Add(1)
		go func(idx int, fields map[string]interface{}) {
			defer wg.Done()
			result, err := s.ValidateInvoice(ctx, fields)
			if err != nil {
				// Field maps always coerce; only worker acquisition can
				// fail here, and then an all-absent record is honest.
				result = s.engine.ValidateRecord(domain.NewInvoice())
			}
			results[idx] = result
		}(i, inv)
	}

	wg.Wait()

	summary := validator.Summarize(results)
	s.log.Info().
		Int("total", summary.TotalInvoices).
		Int("valid", summary.ValidInvoices).
		Int("invalid", summary.InvalidInvoices).
		Msg("Batch validated")

	return results, summary, nil
}

// ExtractInvoice extracts invoice fields from a PDF document
func (s *QCProcessorService) ExtractInvoice(ctx context.Context, pdfData []byte) (*domain.Invoice, error) {
	if err := s.acquireWorker(ctx, "extract_invoice"); err != nil {
		return nil, err
	}
	defer s.releaseWorker()

	return s.extract(ctx, pdfData)
}

// ExtractAndValidate extracts fields from a PDF, validates the record and
// builds a single-invoice report. The report is persisted when a repository
// is configured; storage failures are logged, not propagated.
func (s *QCProcessorService) ExtractAndValidate(ctx context.Context, pdfData []byte) (*model.QCReport, error) {
	if err := s.acquireWorker(ctx, "extract_and_validate"); err != nil {
		return nil, err
	}
	defer s.releaseWorker()

	extracted, err := s.extract(ctx, pdfData)
	if err != nil {
		return nil, err
	}

	result := s.engine.ValidateRecord(extracted)
	report := &model.QCReport{
		Extracted: extracted,
		Result:    result,
		Summary:   validator.Summarize([]domain.ValidationResult{result}),
	}

	if s.reports != nil {
		if reportID, err := s.reports.StoreReport(ctx, report); err != nil {
			s.log.Error().Err(err).Msg("Failed to store QC report")
		} else {
			s.log.Debug().Str("report_id", reportID).Msg("QC report stored")
		}
	}

	return report, nil
}

func (s *QCProcessorService) extract(ctx context.Context, pdfData []byte) (*domain.Invoice, error) {
	if s.reports != nil {
		if _, err := s.reports.StoreDocument(ctx, pdfData); err != nil {
			// Log the error but continue with processing
			s.log.Error().Err(err).Msg("Failed to store source document")
		}
	}

	text, err := pdftext.ExtractText(pdfData)
	if err != nil {
		return nil, &ProcessingError{
			Op:  "extract_text",
			Err: err,
		}
	}

	extracted := parser.Parse(text)
	s.log.Debug().
		Str("invoice_id", extracted.InvoiceID).
		Int("line_items", len(extracted.LineItems)).
		Msg("Invoice fields extracted")

	return extracted, nil
}

// acquireWorker takes a slot from the pool, honoring context cancellation
// while waiting.
func (s *QCProcessorService) acquireWorker(ctx context.Context, op string) error {
	select {
	case s.workerQueue <- struct{}{}:
		return nil
	case <-ctx.Done():
		return &ProcessingError{
			Op:  op,
			Err: ctx.Err(),
		}
	}
}

func (s *QCProcessorService) releaseWorker() {
	<-s.workerQueue
}

// Shutdown implements the shutdown method from InvoiceQCServicer interface
func (s *QCProcessorService) Shutdown() {
	close(s.workerQueue)
}

package handler

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/model"
	"github.com/ridwanfathin/invoice-qc-service/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice quality control
type InvoiceHandler struct {
	processor   service.InvoiceQCServicer
	maxFileSize int64
	log         zerolog.Logger
}

// NewInvoiceHandler creates a new invoice QC handler
func NewInvoiceHandler(processor service.InvoiceQCServicer, maxFileSize int64) *InvoiceHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024 // 10MB default
	}
	return &InvoiceHandler{
		processor:   processor,
		maxFileSize: maxFileSize,
		log:         logger.WithComponent("invoice-handler"),
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/invoices/validate", h.ValidateInvoices)
	router.POST("/v1/invoices/qc", h.ExtractAndValidatePDF)
}

// ValidateInvoices handles a request to validate a batch of invoice JSON objects
// @Summary Validate invoices
// @Description Takes an array of invoices and returns per-invoice validation results plus a batch summary
// @Tags validation
// @Accept json
// @Produce json
// @Success 200 {object} model.ValidateBatchResponse "Per-invoice results and batch summary"
// @Failure 400 {object} model.ErrorResponse "Malformed or empty request body"
// @Router /v1/invoices/validate [post]
func (h *InvoiceHandler) ValidateInvoices(c *gin.Context) {
	var invoices []map[string]interface{}
	if err := bindJSON(c, &invoices); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if len(invoices) == 0 {
		respondBadRequest(c, "Request body must be a non-empty JSON array of invoices")
		return
	}

	results, summary, err := h.processor.ValidateBatch(c.Request.Context(), invoices)
	if err != nil {
		respondInternalServerError(c, "Validation failed: "+err.Error())
		return
	}

	respondOK(c, model.ValidateBatchResponse{
		Results: results,
		Summary: summary,
	})
}

// ExtractAndValidatePDF handles a request to extract and validate a PDF invoice
// @Summary Extract and validate a PDF invoice
// @Description Accepts a single PDF file, runs the extraction pipeline, then validates the extracted invoice
// @Tags pdf
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice PDF file"
// @Success 200 {object} model.QCReport "Extracted fields, validation result and summary"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Unreadable PDF"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices/qc [post]
func (h *InvoiceHandler) ExtractAndValidatePDF(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.maxFileSize); err != nil {
		respondBadRequest(c, "Failed to parse form data: "+err.Error())
		return
	}

	file, header, err := getFormFile(c, "file")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		respondBadRequest(c, "Only PDF files are supported")
		return
	}

	if header.Size > h.maxFileSize {
		respondBadRequest(c, "File size exceeds limit")
		return
	}

	fileData, err := io.ReadAll(file)
	if err != nil {
		respondInternalServerError(c, "Failed to read file data: "+err.Error())
		return
	}

	h.log.Info().
		Str("filename", header.Filename).
		Int64("size", header.Size).
		Msg("Processing invoice PDF")

	report, err := h.processor.ExtractAndValidate(c.Request.Context(), fileData)
	if err != nil {
		var procErr *service.ProcessingError
		if errors.As(err, &procErr) && procErr.Op == "extract_text" {
			respondUnprocessableEntity(c, "Unable to extract text from PDF: "+procErr.Err.Error())
			return
		}
		respondInternalServerError(c, "Processing failed: "+err.Error())
		return
	}

	respondOK(c, report)
}

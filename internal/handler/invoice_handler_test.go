package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-qc-service/internal/model"
	"github.com/ridwanfathin/invoice-qc-service/internal/service"
	"github.com/ridwanfathin/invoice-qc-service/internal/validator"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	processor := service.NewQCProcessorService(validator.NewEngine(), 2)
	h := NewInvoiceHandler(processor, 1024*1024)

	router := gin.New()
	h.RegisterRoutes(router)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateInvoicesBatch(t *testing.T) {
	router := setupRouter(t)

	body := `[
		{"invoice_id":"INV-1","buyer_name":"ABC","seller_name":"XYZ","total_amount":200,"currency":"USD"},
		{"invoice_id":"INV-2","seller_name":"XYZ","total_amount":100,"currency":"EUR"}
	]`
	w := postJSON(router, "/v1/invoices/validate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ValidateBatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Valid)
	assert.False(t, resp.Results[1].Valid)
	assert.Contains(t, resp.Results[1].Errors, "missing_field:buyer_name")

	assert.Equal(t, 2, resp.Summary.TotalInvoices)
	assert.Equal(t, 1, resp.Summary.ValidInvoices)
	assert.Equal(t, 1, resp.Summary.InvalidInvoices)
	assert.Equal(t, map[string]int{"buyer_name": 1}, resp.Summary.MissingCountByField)
}

func TestValidateInvoicesEmptyBatch(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/v1/invoices/validate", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateInvoicesMalformedJSON(t *testing.T) {
	router := setupRouter(t)

	w := postJSON(router, "/v1/invoices/validate", `{"not":"an array"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func postMultipartFile(t *testing.T, router *gin.Engine, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExtractAndValidateRejectsNonPDF(t *testing.T) {
	router := setupRouter(t)

	w := postMultipartFile(t, router, "/v1/invoices/qc", "notes.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractAndValidateRejectsMissingFile(t *testing.T) {
	router := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/qc", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractAndValidateUnreadablePDF(t *testing.T) {
	router := setupRouter(t)

	w := postMultipartFile(t, router, "/v1/invoices/qc", "broken.pdf", []byte("not a pdf at all"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Unable to extract text")
}

package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextRejectsNonPDFData(t *testing.T) {
	_, err := ExtractText([]byte("this is plain text, not a pdf"))
	assert.Error(t, err)
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	_, err := ExtractText(nil)
	assert.Error(t, err)
}

func TestExtractFileMissingPath(t *testing.T) {
	_, err := ExtractFile("/nonexistent/invoice.pdf")
	require.Error(t, err)
}

// Package pdftext extracts plain text from PDF documents for the field
// parser. Scanned/image-only PDFs are out of scope: pages without a text
// layer simply contribute nothing.
package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads every page of the PDF and concatenates its text rows,
// one physical row per output line. Pages that cannot be decoded are skipped
// so a single bad page never loses the rest of the document.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				builder.WriteString(word.S)
				builder.WriteString(" ")
			}
			builder.WriteString("\n")
		}
	}
	return builder.String(), nil
}

// ExtractFile reads a PDF from disk and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read pdf file: %w", err)
	}
	return ExtractText(data)
}

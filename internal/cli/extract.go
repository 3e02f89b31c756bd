package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/parser"
	"github.com/ridwanfathin/invoice-qc-service/internal/pdftext"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract invoice fields from a PDF",
	Example: `  # Extract fields from invoice.pdf into extracted.json
  invoiceqc extract --pdf invoice.pdf --output extracted.json`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("pdf", "", "Path to PDF file")
	extractCmd.Flags().String("output", "", "Where to save extracted JSON")
	extractCmd.MarkFlagRequired("pdf")
	extractCmd.MarkFlagRequired("output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	pdfPath, _ := cmd.Flags().GetString("pdf")
	outputPath, _ := cmd.Flags().GetString("output")

	log.Info().Str("pdf", pdfPath).Msg("Extracting invoice")
	text, err := pdftext.ExtractFile(pdfPath)
	if err != nil {
		return fmt.Errorf("extract text from %s: %w", pdfPath, err)
	}

	extracted := parser.Parse(text)

	if err := writeJSONFile(outputPath, extracted); err != nil {
		return err
	}

	fmt.Printf("Extraction completed, saved to %s\n", outputPath)
	return nil
}

// writeJSONFile writes v as indented JSON, creating parent directories.
func writeJSONFile(path string, v interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

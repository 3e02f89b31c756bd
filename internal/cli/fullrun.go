package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/model"
	"github.com/ridwanfathin/invoice-qc-service/internal/parser"
	"github.com/ridwanfathin/invoice-qc-service/internal/pdftext"
	"github.com/ridwanfathin/invoice-qc-service/internal/validator"
)

var fullRunCmd = &cobra.Command{
	Use:   "full-run",
	Short: "Extract, validate and save a QC report",
	Example: `  # Run the full pipeline over invoice.pdf
  invoiceqc full-run --pdf invoice.pdf --report reports/invoice.json`,
	RunE: runFullRun,
}

func init() {
	rootCmd.AddCommand(fullRunCmd)

	fullRunCmd.Flags().String("pdf", "", "Path to PDF file")
	fullRunCmd.Flags().String("report", "", "Where to save the QC report JSON")
	fullRunCmd.MarkFlagRequired("pdf")
	fullRunCmd.MarkFlagRequired("report")
}

func runFullRun(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("full-run")

	pdfPath, _ := cmd.Flags().GetString("pdf")
	reportPath, _ := cmd.Flags().GetString("report")

	log.Info().Str("pdf", pdfPath).Msg("Extracting and validating")
	text, err := pdftext.ExtractFile(pdfPath)
	if err != nil {
		return fmt.Errorf("extract text from %s: %w", pdfPath, err)
	}

	extracted := parser.Parse(text)
	result := newEngine().ValidateRecord(extracted)
	report := &model.QCReport{
		Extracted: extracted,
		Result:    result,
		Summary:   validator.Summarize([]domain.ValidationResult{result}),
	}

	if err := writeJSONFile(reportPath, report); err != nil {
		return err
	}

	fmt.Printf("Full run completed, report saved to %s\n", reportPath)
	return nil
}

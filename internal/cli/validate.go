package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an invoice JSON file",
	Long: `Validate a single invoice JSON object, or an array of invoices, against
the business-rule schema and print per-invoice results plus a summary.`,
	Example: `  # Validate a single extracted invoice
  invoiceqc validate --json extracted.json

  # Widen the reconciliation tolerance
  invoiceqc validate --json extracted.json --tolerance 0.05`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("json", "", "Path to invoice JSON file")
	validateCmd.MarkFlagRequired("json")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("validate")

	jsonPath, _ := cmd.Flags().GetString("json")

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", jsonPath, err)
	}

	invoices, err := decodeInvoices(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", jsonPath, err)
	}

	log.Info().Str("json", jsonPath).Int("invoices", len(invoices)).Msg("Validating")

	engine := newEngine()
	results := make([]domain.ValidationResult, 0, len(invoices))
	for _, inv := range invoices {
		result, err := engine.Validate(inv)
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	summary := validator.Summarize(results)

	printJSON("Validation Results", results)
	printJSON("Summary", summary)

	if summary.InvalidInvoices > 0 {
		os.Exit(1)
	}
	return nil
}

// decodeInvoices accepts either a single invoice object or an array of them.
func decodeInvoices(data []byte) ([]map[string]interface{}, error) {
	var batch []map[string]interface{}
	if err := json.Unmarshal(data, &batch); err == nil {
		return batch, nil
	}

	var single map[string]interface{}
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []map[string]interface{}{single}, nil
}

func printJSON(header string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("=== %s ===\n%v\n", header, v)
		return
	}
	fmt.Printf("=== %s ===\n%s\n", header, data)
}

// Package cli implements the invoiceqc command-line tool: offline invoice
// extraction and validation without the HTTP service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/validator"
)

var version = "1.0.0"

var (
	logLevel  string
	logFormat string
	tolerance float64
)

var rootCmd = &cobra.Command{
	Use:   "invoiceqc",
	Short: "Invoice extraction and validation CLI tool",
	Long: `invoiceqc extracts structured invoice fields from PDF documents and
validates invoice data against the business-rule schema, producing
per-invoice results and batch summaries.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(logLevel, logFormat)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", validator.DefaultTolerance, "Absolute tolerance for amount reconciliation checks")
}

func newEngine() *validator.Engine {
	return validator.NewEngine(validator.WithTolerance(tolerance))
}

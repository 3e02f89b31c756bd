package main

import (
	"log"

	"github.com/ridwanfathin/invoice-qc-service/internal/config"
	"github.com/ridwanfathin/invoice-qc-service/internal/handler"
	"github.com/ridwanfathin/invoice-qc-service/internal/logger"
	"github.com/ridwanfathin/invoice-qc-service/internal/repository"
	"github.com/ridwanfathin/invoice-qc-service/internal/server"
	"github.com/ridwanfathin/invoice-qc-service/internal/service"
	"github.com/ridwanfathin/invoice-qc-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	mainLog := logger.WithComponent("main")

	// Create the validation engine with the configured tolerance
	engine := validator.NewEngine(validator.WithTolerance(cfg.Tolerance))

	// Create invoice QC processor service
	mainLog.Info().Int("max_workers", cfg.MaxWorkers).Msg("Creating invoice QC processor service")
	processorService := service.NewQCProcessorService(engine, cfg.MaxWorkers)

	// Initialize report repository
	mainLog.Info().Str("report_dir", cfg.ReportDir).Msg("Initializing report repository")
	repo, err := repository.NewFileRepository(cfg.ReportDir)
	if err != nil {
		mainLog.Fatal().Err(err).Msg("Failed to initialize report repository")
	}
	processorService.SetReportRepository(repo)

	// Create handler
	invoiceHandler := handler.NewInvoiceHandler(processorService, cfg.MaxFileSize)

	// Create and configure server
	appServer := server.NewServer(cfg, invoiceHandler)

	// Set processor service in the server for clean shutdown
	appServer.SetQCService(processorService)

	// Start server (blocking call)
	mainLog.Info().Int("port", cfg.Port).Msg("Starting server")
	if err := appServer.Start(); err != nil {
		mainLog.Fatal().Err(err).Msg("Server error")
	}

	mainLog.Info().Msg("Server shutdown complete")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatehlogistics/erp-backend/internal/config"
	"github.com/fatehlogistics/erp-backend/internal/expense"
	httpserver "github.com/fatehlogistics/erp-backend/internal/interfaces/http"
	"github.com/fatehlogistics/erp-backend/internal/jobs"
	"github.com/fatehlogistics/erp-backend/internal/ledger"
	"github.com/fatehlogistics/erp-backend/internal/reports"
	"github.com/fatehlogistics/erp-backend/internal/repository"
	"github.com/fatehlogistics/erp-backend/pkg/database"
	"github.com/fatehlogistics/erp-backend/pkg/utils"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
)

func main() {
	// Load a local .env before viper reads the environment.
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting ERP backend",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Repositories
	expenseRepo := repository.NewExpenseRequestRepository(db, logger)
	journalRepo := repository.NewJournalEntryRepository(db, logger)
	paymentModeRepo := repository.NewPaymentModeRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)
	jobRecordRepo := repository.NewJobRecordRepository(db, logger)
	documentRepo := repository.NewDocumentRepository(db, logger)
	quotationRepo := repository.NewQuotationRepository(db, logger)
	vehicleRepo := repository.NewVehicleRepository(db, logger)
	purchaseInvoiceRepo := repository.NewPurchaseInvoiceRepository(db, logger)

	// Services
	materializer := ledger.NewMaterializer(
		journalRepo, expenseRepo, paymentModeRepo, userRepo, db, logger)
	expenseService := expense.NewService(expenseRepo, materializer, db, logger)
	jobService := jobs.NewService(jobRecordRepo, documentRepo, quotationRepo, logger)
	reportService := reports.NewService(
		vehicleRepo, purchaseInvoiceRepo, journalRepo, jobRecordRepo, logger)
	exporter := reports.NewExporter(logger)

	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		expenseService,
		jobService,
		reportService,
		exporter,
		&zapLoggerAdapter{logger: logger},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}

// zapLoggerAdapter adapts zap.Logger to the http server's Logger interface.
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, convertToZapFields(keysAndValues...)...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, convertToZapFields(keysAndValues...)...)
}

// convertToZapFields converts key-value pairs to zap fields.
func convertToZapFields(keysAndValues ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

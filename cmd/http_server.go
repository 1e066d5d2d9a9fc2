package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"budgetbook/internal"
	"budgetbook/internal/category"
	"budgetbook/internal/database"
	"budgetbook/internal/report"
	"budgetbook/internal/transaction"
	transactionPostgres "budgetbook/internal/transaction/postgres"
	"budgetbook/internal/transport"
	"budgetbook/internal/transport/rest"
	"budgetbook/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config             *internal.Config
	DB                 *sqlx.DB
	Router             *chi.Mux
	Logger             *slog.Logger
	TransactionHandler *transaction.Handler
	ReportHandler      *report.Handler
	CategoryHandler    *category.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.TransactionHandler,
		deps.ReportHandler,
		deps.CategoryHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, err := database.Connect(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Schema is brought up to date on every start; a no-op when current.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	gormDB, err := database.Gorm(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	baseHandler := transport.NewBaseHandler(lg)

	transactionRepo := transactionPostgres.NewTransactionRepository(gormDB)
	transactionService := transaction.NewService(transactionRepo, lg)
	transactionHandler := transaction.NewHandler(baseHandler, transactionService)

	reportHandler := report.NewHandler(baseHandler, transactionService)

	categoryService := category.NewService(lg)
	categoryHandler := category.NewHandler(baseHandler, categoryService)

	return &Dependencies{
		Config:             config,
		DB:                 db,
		Router:             chi.NewRouter(),
		Logger:             lg,
		TransactionHandler: transactionHandler,
		ReportHandler:      reportHandler,
		CategoryHandler:    categoryHandler,
	}, nil
}

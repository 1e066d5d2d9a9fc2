package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"budgetbook/internal/category"
	"budgetbook/internal/report"
	"budgetbook/internal/transaction"
	"budgetbook/internal/transport/middleware"
	"budgetbook/internal/transport/swagger"
)

// RegisterAllRoutes wires middleware and all API routes onto the router.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	transactionHandler *transaction.Handler,
	reportHandler *report.Handler,
	categoryHandler *category.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec at root, Swagger UI alongside
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if categoryHandler != nil {
			r.Get("/categories", categoryHandler.GetCategories)
		}

		if transactionHandler != nil {
			r.Route("/transactions", func(tr chi.Router) {
				tr.Post("/", transactionHandler.CreateTransaction)
				tr.Get("/", transactionHandler.ListTransactions)
			})
		}

		if reportHandler != nil {
			r.Get("/reports/summary", reportHandler.GetSummary)
		}
	})
}

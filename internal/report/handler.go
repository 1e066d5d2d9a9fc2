package report

import (
	"context"
	"net/http"

	"budgetbook/internal"
	"budgetbook/internal/transaction"
	"budgetbook/internal/transport"
)

// TransactionSource provides the transaction set summaries are derived
// from. Satisfied by the transaction service.
type TransactionSource interface {
	ListAll(ctx context.Context) ([]*transaction.Transaction, error)
}

type Handler struct {
	*transport.BaseHandler
	Source TransactionSource
}

func NewHandler(base *transport.BaseHandler, source TransactionSource) *Handler {
	return &Handler{
		BaseHandler: base,
		Source:      source,
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), 0)
	defer cancel()

	transactions, err := h.Source.ListAll(ctx)
	if err != nil {
		h.Logger.Error("GetSummary: failed to load transactions", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	summary := BuildSummary(transactions)

	h.Logger.Info("GetSummary: summary computed",
		"transaction_count", summary.TransactionCount,
		"has_data", summary.HasData)

	h.WriteJSON(w, http.StatusOK, summary)
}

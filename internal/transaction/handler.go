package transaction

import (
	"context"
	"encoding/json"
	"net/http"

	"budgetbook/internal"
	"budgetbook/internal/transport"
)

type ServiceAPI interface {
	CreateTransaction(ctx context.Context, dto CreateTransactionDTO) (*Transaction, error)
	ListAll(ctx context.Context) ([]*Transaction, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     service,
	}
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := internal.WithTimeout(r.Context(), 0)
	defer cancel()

	tx, err := h.Service.CreateTransaction(ctx, dto)
	if err != nil {
		h.Logger.Error("CreateTransaction: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction recorded",
		"transaction_id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount.String())

	h.WriteJSON(w, http.StatusCreated, tx)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := internal.WithTimeout(r.Context(), 0)
	defer cancel()

	transactions, err := h.Service.ListAll(ctx)
	if err != nil {
		h.Logger.Error("ListTransactions: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if transactions == nil {
		transactions = []*Transaction{}
	}

	h.WriteJSON(w, http.StatusOK, ListTransactionsResponse{
		Transactions: transactions,
		Count:        len(transactions),
	})
}

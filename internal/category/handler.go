package category

import (
	"net/http"

	"budgetbook/internal/transaction"
	"budgetbook/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(base *transport.BaseHandler, service *Service) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     service,
	}
}

// GetCategories serves the catalog. With ?type= it returns the list for
// one transaction type, without it the whole catalog.
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	txType := r.URL.Query().Get("type")
	if txType == "" {
		income, _ := h.Service.ListByType(transaction.TypeIncome)
		expense, _ := h.Service.ListByType(transaction.TypeExpense)
		h.WriteJSON(w, http.StatusOK, CatalogResponse{
			Income:  income,
			Expense: expense,
		})
		return
	}

	categories, err := h.Service.ListByType(txType)
	if err != nil {
		h.Logger.Error("GetCategories: invalid type", "type", txType)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, CategoriesResponse{
		Type:       txType,
		Categories: categories,
	})
}

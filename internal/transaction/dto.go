package transaction

import (
	"github.com/shopspring/decimal"

	errors "budgetbook/internal"
	"budgetbook/internal/core/common/validation"
	"budgetbook/internal/types"
)

// CreateTransactionDTO is the request payload for recording a
// transaction.
type CreateTransactionDTO struct {
	Date        types.Date      `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Validate enforces the store-side invariants: amount strictly positive,
// type in the enumerated set, date present. Category is deliberately
// left free-form here; the catalog constrains it at the UI boundary
// only.
func (dto CreateTransactionDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()
	validator.Field("date", dto.Date).
		Required()
	validator.Field("type", dto.Type).
		Required().
		OneOf(Types, errors.ErrCodeInvalidType)
	validator.Field("amount", dto.Amount).
		Positive(errors.ErrCodeInvalidAmount)
	validator.Field("description", dto.Description).
		MaxLength(500)
	return validator.Validate()
}

// ListTransactionsResponse wraps the full transaction set for the API.
type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Count        int            `json:"count"`
}

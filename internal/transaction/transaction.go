package transaction

import (
	"github.com/shopspring/decimal"

	txDatamodel "budgetbook/internal/core/datamodel/transaction"
	"budgetbook/internal/types"
)

// Transaction is one recorded income or expense event. The sign of its
// effect on the balance is carried by Type, never by the sign of Amount.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        types.Date      `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Types lists the allowed transaction types.
var Types = []string{TypeIncome, TypeExpense}

func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

func NewTransaction(dto CreateTransactionDTO) *Transaction {
	return &Transaction{
		Date:        dto.Date,
		Type:        dto.Type,
		Category:    dto.Category,
		Amount:      dto.Amount,
		Description: dto.Description,
	}
}

func ToDataModel(t *Transaction) *txDatamodel.Transaction {
	return &txDatamodel.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
	}
}

func FromDataModel(t *txDatamodel.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
	}
}

func FromDataModelSlice(transactions []*txDatamodel.Transaction) []*Transaction {
	result := make([]*Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = FromDataModel(t)
	}
	return result
}

package transaction

import (
	"github.com/shopspring/decimal"

	"budgetbook/internal/types"
)

// Transaction is the persistence shape of a recorded income or expense
// event. Rows are append-only: the application never updates or deletes
// them, so there are no bookkeeping timestamps beyond the entry date.
type Transaction struct {
	ID          int64           `gorm:"primaryKey"`
	Date        types.Date      `gorm:"column:date;type:date;not null"`
	Type        string          `gorm:"column:type;not null"`
	Category    string          `gorm:"column:category;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric;not null"`
	Description string          `gorm:"column:description"`
}

func (Transaction) TableName() string {
	return "transactions"
}

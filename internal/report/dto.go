package report

import (
	"github.com/shopspring/decimal"

	"budgetbook/internal/transaction"
)

// SummaryResponse carries the derived figures the presentation layer
// renders: headline metrics plus the two chart groupings. HasData lets
// the UI show its "no data yet" state instead of empty charts.
type SummaryResponse struct {
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	Net                decimal.Decimal            `json:"net"`
	TransactionCount   int                        `json:"transaction_count"`
	HasData            bool                       `json:"has_data"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	ExpensesByDay      []DailyTotal               `json:"expenses_by_day"`
}

// BuildSummary computes the full summary for a transaction set.
func BuildSummary(transactions []*transaction.Transaction) SummaryResponse {
	return SummaryResponse{
		TotalIncome:        Total(transactions, transaction.TypeIncome),
		TotalExpenses:      Total(transactions, transaction.TypeExpense),
		Net:                Net(transactions),
		TransactionCount:   len(transactions),
		HasData:            len(transactions) > 0,
		ExpensesByCategory: ExpensesByCategory(transactions),
		ExpensesByDay:      ExpensesByDay(transactions),
	}
}

// Package report derives summary figures from the full transaction set.
// Everything here is a pure function over in-memory data: no I/O, no
// side effects, empty input yields zero totals and empty groupings.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"budgetbook/internal/transaction"
	"budgetbook/internal/types"
)

// DailyTotal is the summed expense amount for one calendar date.
type DailyTotal struct {
	Date   types.Date      `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Total sums the amounts of all transactions of the given type.
func Total(transactions []*transaction.Transaction, txType string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == txType {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Net returns total income minus total expenses.
func Net(transactions []*transaction.Transaction) decimal.Decimal {
	return Total(transactions, transaction.TypeIncome).
		Sub(Total(transactions, transaction.TypeExpense))
}

// ExpensesByCategory sums expense amounts grouped by category. Keys are
// the distinct categories present in the expense subset.
func ExpensesByCategory(transactions []*transaction.Transaction) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		sum, ok := byCategory[tx.Category]
		if !ok {
			sum = decimal.Zero
		}
		byCategory[tx.Category] = sum.Add(tx.Amount)
	}
	return byCategory
}

// ExpensesByDay sums expense amounts per calendar date, ordered by date
// ascending. The ordering is what time-series charts consume.
func ExpensesByDay(transactions []*transaction.Transaction) []DailyTotal {
	byDay := make(map[types.Date]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		sum, ok := byDay[tx.Date]
		if !ok {
			sum = decimal.Zero
		}
		byDay[tx.Date] = sum.Add(tx.Amount)
	}

	totals := make([]DailyTotal, 0, len(byDay))
	for date, amount := range byDay {
		totals = append(totals, DailyTotal{Date: date, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}

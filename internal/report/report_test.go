package report_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"budgetbook/internal/report"
	"budgetbook/internal/transaction"
	"budgetbook/internal/types"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

func tx(date types.Date, txType, category, amount string) *transaction.Transaction {
	return &transaction.Transaction{
		Date:     date,
		Type:     txType,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

var _ = Describe("Aggregation", func() {
	jan1 := types.NewDate(2024, time.January, 1)
	jan2 := types.NewDate(2024, time.January, 2)

	Describe("Total and Net", func() {
		It("sums amounts per type and nets them", func() {
			transactions := []*transaction.Transaction{
				tx(jan1, transaction.TypeIncome, "Salary", "2500"),
				tx(jan1, transaction.TypeIncome, "Gift", "100"),
				tx(jan2, transaction.TypeExpense, "Food", "42.75"),
				tx(jan2, transaction.TypeExpense, "Transport", "15.25"),
			}

			income := report.Total(transactions, transaction.TypeIncome)
			expenses := report.Total(transactions, transaction.TypeExpense)

			Expect(income.Equal(decimal.RequireFromString("2600"))).To(BeTrue())
			Expect(expenses.Equal(decimal.RequireFromString("58"))).To(BeTrue())
			Expect(report.Net(transactions).Equal(decimal.RequireFromString("2542"))).To(BeTrue())
		})

		It("always satisfies net == income - expenses", func() {
			transactions := []*transaction.Transaction{
				tx(jan1, transaction.TypeIncome, "Salary", "10.10"),
				tx(jan1, transaction.TypeExpense, "Food", "3.33"),
				tx(jan2, transaction.TypeExpense, "Food", "6.67"),
				tx(jan2, transaction.TypeIncome, "Other", "0.01"),
			}

			income := report.Total(transactions, transaction.TypeIncome)
			expenses := report.Total(transactions, transaction.TypeExpense)
			Expect(report.Net(transactions).Equal(income.Sub(expenses))).To(BeTrue())
		})

		It("returns zero for a type with no transactions", func() {
			transactions := []*transaction.Transaction{
				tx(jan1, transaction.TypeExpense, "Food", "5"),
			}
			Expect(report.Total(transactions, transaction.TypeIncome).IsZero()).To(BeTrue())
		})
	})

	Describe("ExpensesByCategory", func() {
		It("sums expenses per category and ignores income", func() {
			transactions := []*transaction.Transaction{
				tx(jan1, transaction.TypeExpense, "Food", "20"),
				tx(jan2, transaction.TypeExpense, "Food", "5"),
				tx(jan2, transaction.TypeExpense, "Transport", "15"),
				tx(jan1, transaction.TypeIncome, "Salary", "1000"),
			}

			byCategory := report.ExpensesByCategory(transactions)
			Expect(byCategory).To(HaveLen(2))
			Expect(byCategory["Food"].Equal(decimal.RequireFromString("25"))).To(BeTrue())
			Expect(byCategory["Transport"].Equal(decimal.RequireFromString("15"))).To(BeTrue())
		})
	})

	Describe("ExpensesByDay", func() {
		It("sums expenses per date in ascending order", func() {
			transactions := []*transaction.Transaction{
				tx(jan2, transaction.TypeExpense, "Food", "10"),
				tx(jan1, transaction.TypeExpense, "Food", "5"),
			}

			byDay := report.ExpensesByDay(transactions)
			Expect(byDay).To(HaveLen(2))
			Expect(byDay[0].Date.Equal(jan1)).To(BeTrue())
			Expect(byDay[0].Amount.Equal(decimal.RequireFromString("5"))).To(BeTrue())
			Expect(byDay[1].Date.Equal(jan2)).To(BeTrue())
			Expect(byDay[1].Amount.Equal(decimal.RequireFromString("10"))).To(BeTrue())
		})

		It("produces one entry per distinct day", func() {
			transactions := []*transaction.Transaction{
				tx(jan1, transaction.TypeExpense, "Food", "5"),
				tx(jan1, transaction.TypeExpense, "Transport", "7"),
				tx(jan2, transaction.TypeExpense, "Food", "10"),
				tx(jan2, transaction.TypeIncome, "Salary", "100"),
			}

			byDay := report.ExpensesByDay(transactions)
			Expect(byDay).To(HaveLen(2))
			Expect(byDay[0].Amount.Equal(decimal.RequireFromString("12"))).To(BeTrue())
			Expect(byDay[1].Amount.Equal(decimal.RequireFromString("10"))).To(BeTrue())
		})
	})

	Describe("empty input", func() {
		It("yields zero totals and empty groupings, never an error", func() {
			var transactions []*transaction.Transaction

			Expect(report.Total(transactions, transaction.TypeIncome).IsZero()).To(BeTrue())
			Expect(report.Total(transactions, transaction.TypeExpense).IsZero()).To(BeTrue())
			Expect(report.Net(transactions).IsZero()).To(BeTrue())
			Expect(report.ExpensesByCategory(transactions)).To(BeEmpty())
			Expect(report.ExpensesByDay(transactions)).To(BeEmpty())
		})
	})

	Describe("BuildSummary", func() {
		It("flags the empty state for the presentation layer", func() {
			summary := report.BuildSummary(nil)
			Expect(summary.HasData).To(BeFalse())
			Expect(summary.TransactionCount).To(BeZero())
			Expect(summary.TotalIncome.IsZero()).To(BeTrue())
			Expect(summary.TotalExpenses.IsZero()).To(BeTrue())
			Expect(summary.Net.IsZero()).To(BeTrue())
			Expect(summary.ExpensesByCategory).NotTo(BeNil())
			Expect(summary.ExpensesByDay).NotTo(BeNil())
		})

		It("carries all derived figures", func() {
			transactions := []*transaction.Transaction{
				tx(jan1, transaction.TypeIncome, "Salary", "100"),
				tx(jan2, transaction.TypeExpense, "Food", "40"),
			}

			summary := report.BuildSummary(transactions)
			Expect(summary.HasData).To(BeTrue())
			Expect(summary.TransactionCount).To(Equal(2))
			Expect(summary.Net.Equal(decimal.RequireFromString("60"))).To(BeTrue())
			Expect(summary.ExpensesByCategory).To(HaveKey("Food"))
			Expect(summary.ExpensesByDay).To(HaveLen(1))
		})
	})
})

package report_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	internal "budgetbook/internal"
	"budgetbook/internal/report"
	"budgetbook/internal/transaction"
	"budgetbook/internal/transport"
	"budgetbook/internal/types"
)

type mockSource struct {
	transactions []*transaction.Transaction
	err          error
}

func (m *mockSource) ListAll(_ context.Context) ([]*transaction.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}

var _ = Describe("Handler", func() {
	var (
		source  *mockSource
		handler *report.Handler
	)

	BeforeEach(func() {
		source = &mockSource{}
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = report.NewHandler(transport.NewBaseHandler(lg), source)
	})

	It("serves the computed summary", func() {
		source.transactions = []*transaction.Transaction{
			tx(types.NewDate(2024, time.January, 1), transaction.TypeIncome, "Salary", "100"),
			tx(types.NewDate(2024, time.January, 2), transaction.TypeExpense, "Food", "40"),
		}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var summary report.SummaryResponse
		Expect(json.NewDecoder(w.Body).Decode(&summary)).To(Succeed())
		Expect(summary.HasData).To(BeTrue())
		Expect(summary.TransactionCount).To(Equal(2))
		Expect(summary.TotalIncome.Equal(decimal.RequireFromString("100"))).To(BeTrue())
		Expect(summary.TotalExpenses.Equal(decimal.RequireFromString("40"))).To(BeTrue())
		Expect(summary.Net.Equal(decimal.RequireFromString("60"))).To(BeTrue())
	})

	It("renders the empty state with zeros and empty groupings", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"has_data":false`))
		Expect(w.Body.String()).To(ContainSubstring(`"expenses_by_category":{}`))
		Expect(w.Body.String()).To(ContainSubstring(`"expenses_by_day":[]`))
	})

	It("maps store failures onto their status", func() {
		source.err = internal.NewStoreError("failed to read transactions", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
		w := httptest.NewRecorder()

		handler.GetSummary(w, req)

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})

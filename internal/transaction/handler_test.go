package transaction_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	internal "budgetbook/internal"
	"budgetbook/internal/transaction"
	"budgetbook/internal/transport"
	"budgetbook/internal/types"
)

type mockServiceAPI struct {
	createFn func(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error)
	listFn   func(ctx context.Context) ([]*transaction.Transaction, error)
}

func (m *mockServiceAPI) CreateTransaction(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
	return m.createFn(ctx, dto)
}

func (m *mockServiceAPI) ListAll(ctx context.Context) ([]*transaction.Transaction, error) {
	return m.listFn(ctx)
}

var _ = Describe("Handler", func() {
	var (
		service *mockServiceAPI
		handler *transaction.Handler
	)

	BeforeEach(func() {
		service = &mockServiceAPI{}
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = transaction.NewHandler(transport.NewBaseHandler(lg), service)
	})

	Describe("CreateTransaction", func() {
		It("returns 201 with the stored transaction", func() {
			service.createFn = func(_ context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
				tx := transaction.NewTransaction(dto)
				tx.ID = 7
				return tx, nil
			}

			body := `{"date":"2024-01-02","type":"Expense","category":"Food","amount":"42.75","description":"Groceries"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var got transaction.Transaction
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.ID).To(Equal(int64(7)))
			Expect(got.Date.String()).To(Equal("2024-01-02"))
			Expect(got.Amount.Equal(decimal.RequireFromString("42.75"))).To(BeTrue())
		})

		It("returns 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader("{not json"))
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps validation errors to 400", func() {
			service.createFn = func(_ context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
				return nil, internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
			}

			body := `{"date":"2024-01-02","type":"Expense","category":"Food","amount":"0"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp internal.Response
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Error).NotTo(BeNil())
			Expect(resp.Error.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("maps store errors to 503", func() {
			service.createFn = func(_ context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
				return nil, internal.NewStoreError("failed to store transaction", nil)
			}

			body := `{"date":"2024-01-02","type":"Expense","category":"Food","amount":"5"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	Describe("ListTransactions", func() {
		It("returns the full transaction set with a count", func() {
			service.listFn = func(_ context.Context) ([]*transaction.Transaction, error) {
				return []*transaction.Transaction{
					{
						ID:       2,
						Date:     types.NewDate(2024, time.January, 2),
						Type:     transaction.TypeExpense,
						Category: "Food",
						Amount:   decimal.NewFromInt(10),
					},
					{
						ID:       1,
						Date:     types.NewDate(2024, time.January, 1),
						Type:     transaction.TypeIncome,
						Category: "Salary",
						Amount:   decimal.NewFromInt(100),
					},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
			w := httptest.NewRecorder()

			handler.ListTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp transaction.ListTransactionsResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Count).To(Equal(2))
			Expect(resp.Transactions).To(HaveLen(2))
		})

		It("renders an empty store as an empty list, not null", func() {
			service.listFn = func(_ context.Context) ([]*transaction.Transaction, error) {
				return nil, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
			w := httptest.NewRecorder()

			handler.ListTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"transactions":[]`))
			Expect(w.Body.String()).To(ContainSubstring(`"count":0`))
		})
	})
})

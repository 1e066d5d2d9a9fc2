package category

import (
	"log/slog"

	errors "budgetbook/internal"
	"budgetbook/internal/transaction"
)

// The fixed per-type category lists the input form offers. These
// constrain the UI only; the store accepts any category string.
var (
	incomeCategories = []string{
		"Salary",
		"Gift",
		"Part-Time",
		"Bonus investment",
		"Other",
	}
	expenseCategories = []string{
		"Food",
		"Investment",
		"Utilities",
		"Entertainment",
		"Transport",
		"shopping",
		"Other",
	}
)

// Service serves the category catalog.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// ListByType returns the categories offered for a transaction type.
func (s *Service) ListByType(txType string) ([]string, error) {
	switch txType {
	case transaction.TypeIncome:
		return incomeCategories, nil
	case transaction.TypeExpense:
		return expenseCategories, nil
	default:
		s.logger.Warn("unknown transaction type for categories", "type", txType)
		return nil, errors.NewValidationError("type must be Income or Expense", errors.ErrCodeInvalidType)
	}
}

// IsValid reports whether name is in the catalog for the given type.
func (s *Service) IsValid(txType, name string) bool {
	categories, err := s.ListByType(txType)
	if err != nil {
		return false
	}
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}

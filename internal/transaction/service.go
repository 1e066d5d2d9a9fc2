package transaction

import (
	"context"
	"log/slog"
	"sync"

	errors "budgetbook/internal"
	txDatamodel "budgetbook/internal/core/datamodel/transaction"
)

// Repository defines the data access methods for transactions. The
// store is append-only: insert and full read, nothing else.
type Repository interface {
	Create(ctx context.Context, tx *txDatamodel.Transaction) error
	GetAll(ctx context.Context) ([]*txDatamodel.Transaction, error)
}

// Service handles transaction business logic. It keeps a snapshot of
// the full transaction set between reads; every successful insert
// invalidates the snapshot before returning, so a subsequent ListAll
// always observes the new row. Single-writer assumption, the mutex only
// guards the snapshot itself.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu         sync.Mutex
	cache      []*Transaction
	cacheValid bool
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTransaction validates and persists a new transaction. The
// assigned id is set on the returned value.
func (s *Service) CreateTransaction(ctx context.Context, dto CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("transaction validation failed", "error", err, "type", dto.Type)
		return nil, err
	}

	tx := NewTransaction(dto)
	dm := ToDataModel(tx)
	if err := s.repo.Create(ctx, dm); err != nil {
		s.logger.Error("failed to create transaction", "error", err)
		return nil, errors.NewStoreError("failed to store transaction", err)
	}
	tx.ID = dm.ID

	s.invalidateCache()

	s.logger.Info("transaction created",
		"transaction_id", tx.ID,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount.String())

	return tx, nil
}

// ListAll returns every stored transaction ordered by date descending.
// The result is served from the snapshot when it is still valid.
func (s *Service) ListAll(ctx context.Context) ([]*Transaction, error) {
	s.mu.Lock()
	if s.cacheValid {
		cached := s.cache
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	dms, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err)
		return nil, errors.NewStoreError("failed to read transactions", err)
	}

	transactions := FromDataModelSlice(dms)

	s.mu.Lock()
	s.cache = transactions
	s.cacheValid = true
	s.mu.Unlock()

	return transactions, nil
}

func (s *Service) invalidateCache() {
	s.mu.Lock()
	s.cache = nil
	s.cacheValid = false
	s.mu.Unlock()
}

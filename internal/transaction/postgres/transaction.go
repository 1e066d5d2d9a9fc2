package postgres

import (
	"context"

	"gorm.io/gorm"

	txDatamodel "budgetbook/internal/core/datamodel/transaction"
	"budgetbook/internal/transaction"
)

// TransactionRepository implements transaction.Repository using GORM.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.Repository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction row. The database assigns the id;
// GORM writes it back into tx.
func (r *TransactionRepository) Create(ctx context.Context, tx *txDatamodel.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// GetAll returns every stored transaction, newest date first. Ties on
// the same date break by id so the order is stable.
func (r *TransactionRepository) GetAll(ctx context.Context) ([]*txDatamodel.Transaction, error) {
	var transactions []*txDatamodel.Transaction
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&transactions).Error
	return transactions, err
}

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// TransactionRepository is an in-memory ledger store. Entries are kept
// most-recent-first; SaveTransaction prepends.
type TransactionRepository struct {
	mu   sync.RWMutex
	txns []domain.Transaction
}

// NewTransactionRepository creates an empty in-memory ledger store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// SaveTransaction inserts the transaction at the front of the ledger.
func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = slices.Insert(r.txns, 0, txn)
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.txns {
		if r.txns[i].TransactionID == transactionID {
			txn := r.txns[i]
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactions returns a copy of the ledger, most recent first.
func (r *TransactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.txns), nil
}

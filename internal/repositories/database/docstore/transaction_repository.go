package docstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

type TransactionRepository struct {
	collection portsrepo.Collection
}

func newTransactionRepository(collection portsrepo.Collection) portsrepo.TransactionRepositoryFacade {
	return &TransactionRepository{collection: collection}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// ListTransactions returns every child of the transactions collection.
// A missing collection yields a nil map.
func (r *TransactionRepository) ListTransactions(ctx context.Context) (map[string]domain.Transaction, error) {
	var txns map[string]domain.Transaction
	if _, err := r.collection.FetchAll(ctx, &txns); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	id, err := r.collection.WriteNew(ctx, txn)
	if err != nil {
		return "", fmt.Errorf("failed to push transaction: %w", err)
	}
	return id, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := r.collection.DeleteByID(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return nil
}

func (r *TransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	if err := r.collection.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

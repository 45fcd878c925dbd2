package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions returns every stored transaction keyed by id.
	ListTransactions(ctx context.Context) (map[string]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and returns its generated id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error)

	// DeleteTransaction removes a single transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteAllTransactions clears the whole collection.
	DeleteAllTransactions(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactions returns all transactions keyed by id, never nil.
	ListTransactions(ctx context.Context) (map[string]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction normalizes the payload, stores it and returns the new id.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error)

	// DeleteTransaction removes one transaction without checking that it exists.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// ResetTransactions removes every transaction.
	ResetTransactions(ctx context.Context) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

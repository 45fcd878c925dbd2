package docstore

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on top of one document store.
func NewRepositoryProvider(store portsrepo.DocumentStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newTransactionRepository(store.Collection(portsrepo.TransactionsPath)),
		SummaryRepo:     newSummaryRepository(store.Collection(portsrepo.SummaryPath)),
	}
}

package services_test

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) (map[string]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	args := m.Called(ctx, txn)
	return args.String(0), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// MockSummaryRepository is a mock type for the SummaryRepositoryFacade interface
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) FindSummary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockSummaryRepository) SaveSummary(ctx context.Context, summary domain.Summary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

var _ portsrepo.SummaryRepositoryFacade = (*MockSummaryRepository)(nil)

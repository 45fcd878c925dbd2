package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options...),
		transactionRepo: repo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context) (map[string]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return map[string]domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (string, error) {
	txn, err := s.newTransaction(req)
	if err != nil {
		return "", err
	}

	id, err := s.transactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", id), slog.String("category", txn.Category))
	return id, nil
}

// newTransaction coerces a raw payload into a storable transaction.
// The timestamp always comes from the service clock.
func (s *transactionService) newTransaction(req dto.CreateTransactionRequest) (domain.Transaction, error) {
	income, err := domain.ParseAmount("income", req.Income)
	if err != nil {
		return domain.Transaction{}, err
	}
	expense, err := domain.ParseAmount("expense", req.Expense)
	if err != nil {
		return domain.Transaction{}, err
	}

	now := s.Now()
	return domain.Transaction{
		Date:      domain.StringOr(req.Date, domain.FormatDate(now)),
		Category:  domain.StringOr(req.Category, domain.DefaultCategory),
		Income:    income,
		Expense:   expense,
		Note:      domain.StringOr(req.Note, ""),
		Timestamp: domain.FormatTimestamp(now),
	}, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) ResetTransactions(ctx context.Context) error {
	if err := s.transactionRepo.DeleteAllTransactions(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset transactions")
		return fmt.Errorf("failed to reset transactions: %w", err)
	}
	s.LogInfo(ctx, "All transactions reset")
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// summaryService implements the SummarySvcFacade interface
type summaryService struct {
	BaseService
	summaryRepo portsrepo.SummaryRepositoryFacade
}

// NewSummaryService creates a new summary service
func NewSummaryService(repo portsrepo.SummaryRepositoryFacade, options ...ServiceOption) portssvc.SummarySvcFacade {
	return &summaryService{
		BaseService: newBaseService(options...),
		summaryRepo: repo,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// SaveSummary always writes all four fields; anything missing from the
// payload is stored as zero (or the current time for updated_at).
func (s *summaryService) SaveSummary(ctx context.Context, req dto.SaveSummaryRequest) (*domain.Summary, error) {
	incomeTotal, err := domain.ParseAmount("income_total", req.IncomeTotal)
	if err != nil {
		return nil, err
	}
	expenseTotal, err := domain.ParseAmount("expense_total", req.ExpenseTotal)
	if err != nil {
		return nil, err
	}
	totalBalance, err := domain.ParseAmount("total_balance", req.TotalBalance)
	if err != nil {
		return nil, err
	}

	summary := domain.Summary{
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		TotalBalance: totalBalance,
		UpdatedAt:    domain.StringOr(req.UpdatedAt, domain.FormatTimestamp(s.Now())),
	}

	s.LogDebug(ctx, "Saving summary", "summary", summary)
	if err := s.summaryRepo.SaveSummary(ctx, summary); err != nil {
		s.LogError(ctx, err, "Failed to save summary")
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	s.LogInfo(ctx, "Summary saved")
	return &summary, nil
}

func (s *summaryService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	summary, err := s.summaryRepo.FindSummary(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := domain.DefaultSummary(s.Now())
			return &def, nil
		}
		s.LogError(ctx, err, "Failed to get summary")
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return summary, nil
}

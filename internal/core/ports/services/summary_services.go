package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// SummarySvcFacade defines operations on the summary snapshot
type SummarySvcFacade interface {
	// SaveSummary coerces the payload and overwrites the stored summary.
	SaveSummary(ctx context.Context, req dto.SaveSummaryRequest) (*domain.Summary, error)

	// GetSummary returns the stored summary or a zero-valued default.
	GetSummary(ctx context.Context) (*domain.Summary, error)
}

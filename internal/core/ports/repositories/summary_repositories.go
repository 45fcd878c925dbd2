package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// SummaryReader defines read operations for the summary document
type SummaryReader interface {
	// FindSummary returns the stored summary, or apperrors.ErrNotFound when none was saved.
	FindSummary(ctx context.Context) (*domain.Summary, error)
}

// SummaryWriter defines write operations for the summary document
type SummaryWriter interface {
	// SaveSummary overwrites the summary document.
	SaveSummary(ctx context.Context, summary domain.Summary) error
}

// SummaryRepositoryFacade combines all summary-related repository interfaces
type SummaryRepositoryFacade interface {
	SummaryReader
	SummaryWriter
}

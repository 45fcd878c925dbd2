package docstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

type SummaryRepository struct {
	collection portsrepo.Collection
}

func newSummaryRepository(collection portsrepo.Collection) portsrepo.SummaryRepositoryFacade {
	return &SummaryRepository{collection: collection}
}

var _ portsrepo.SummaryRepositoryFacade = (*SummaryRepository)(nil)

func (r *SummaryRepository) FindSummary(ctx context.Context) (*domain.Summary, error) {
	var summary domain.Summary
	found, err := r.collection.Fetch(ctx, &summary)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &summary, nil
}

// SaveSummary replaces the summary document; it never merges.
func (r *SummaryRepository) SaveSummary(ctx context.Context, summary domain.Summary) error {
	if err := r.collection.Replace(ctx, summary); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	return nil
}

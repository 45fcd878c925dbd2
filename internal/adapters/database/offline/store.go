// Package offline provides the document store used when the process starts
// without database credentials. Every call fails with
// apperrors.ErrStoreNotInitialized instead of crashing the server.
package offline

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ portsrepo.DocumentStore = (*Store)(nil)

func (s *Store) Collection(string) portsrepo.Collection {
	return collection{}
}

type collection struct{}

func (collection) Fetch(context.Context, any) (bool, error) {
	return false, apperrors.ErrStoreNotInitialized
}

func (collection) FetchAll(context.Context, any) (bool, error) {
	return false, apperrors.ErrStoreNotInitialized
}

func (collection) WriteNew(context.Context, any) (string, error) {
	return "", apperrors.ErrStoreNotInitialized
}

func (collection) Replace(context.Context, any) error {
	return apperrors.ErrStoreNotInitialized
}

func (collection) DeleteByID(context.Context, string) error {
	return apperrors.ErrStoreNotInitialized
}

func (collection) DeleteAll(context.Context) error {
	return apperrors.ErrStoreNotInitialized
}

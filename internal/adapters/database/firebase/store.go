// Package firebase is the remote store client backed by a Firebase
// Realtime Database.
package firebase

import (
	"context"
	"encoding/json"
	"fmt"

	"firebase.google.com/go/v4/db"

	"github.com/SscSPs/expense_tracker/internal/adapters/database"
	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// Store hands out collection references on one database client.
type Store struct {
	client *db.Client
}

// NewStore wraps an initialized Realtime Database client.
func NewStore(client *db.Client) *Store {
	return &Store{client: client}
}

var _ portsrepo.DocumentStore = (*Store)(nil)

func (s *Store) Collection(path string) portsrepo.Collection {
	return &collection{ref: s.client.NewRef(path)}
}

type collection struct {
	ref *db.Ref
}

var _ portsrepo.Collection = (*collection)(nil)

func (c *collection) Fetch(ctx context.Context, dest any) (bool, error) {
	var raw json.RawMessage
	if err := c.ref.Get(ctx, &raw); err != nil {
		return false, c.storeErr("get", err)
	}
	return database.DecodeDocument(raw, dest)
}

// FetchAll reads the whole subtree; the database returns children as one
// object keyed by child id.
func (c *collection) FetchAll(ctx context.Context, dest any) (bool, error) {
	return c.Fetch(ctx, dest)
}

func (c *collection) WriteNew(ctx context.Context, record any) (string, error) {
	ref, err := c.ref.Push(ctx, record)
	if err != nil {
		return "", c.storeErr("push", err)
	}
	return ref.Key, nil
}

func (c *collection) Replace(ctx context.Context, record any) error {
	if err := c.ref.Set(ctx, record); err != nil {
		return c.storeErr("set", err)
	}
	return nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) error {
	// An empty child path would address the collection itself.
	if id == "" {
		return fmt.Errorf("%w: empty id", apperrors.ErrValidation)
	}
	if err := c.ref.Child(id).Delete(ctx); err != nil {
		return c.storeErr("delete "+id, err)
	}
	return nil
}

func (c *collection) DeleteAll(ctx context.Context) error {
	if err := c.ref.Delete(ctx); err != nil {
		return c.storeErr("delete", err)
	}
	return nil
}

func (c *collection) storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", apperrors.ErrStore, op, c.ref.Path, err)
}

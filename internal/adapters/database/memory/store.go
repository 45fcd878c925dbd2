// Package memory is an in-process document store with the same semantics
// as the remote database. Records are kept JSON-encoded so callers observe
// the same serialization round trip as with the real store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/SscSPs/expense_tracker/internal/adapters/database"
	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// node is either a whole document or a set of children, never both.
type node struct {
	document json.RawMessage
	children map[string]json.RawMessage
}

type Store struct {
	mu    sync.RWMutex
	nodes map[string]*node
}

func NewStore() *Store {
	return &Store{nodes: make(map[string]*node)}
}

var _ portsrepo.DocumentStore = (*Store)(nil)

func (s *Store) Collection(path string) portsrepo.Collection {
	return &collection{store: s, path: path}
}

type collection struct {
	store *Store
	path  string
}

var _ portsrepo.Collection = (*collection)(nil)

func (c *collection) Fetch(ctx context.Context, dest any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", apperrors.ErrStore, err)
	}

	c.store.mu.RLock()
	raw, err := c.snapshot()
	c.store.mu.RUnlock()
	if err != nil {
		return false, err
	}
	return database.DecodeDocument(raw, dest)
}

func (c *collection) FetchAll(ctx context.Context, dest any) (bool, error) {
	return c.Fetch(ctx, dest)
}

// snapshot renders the node at the path as the remote store would return it.
// Callers hold at least the read lock.
func (c *collection) snapshot() (json.RawMessage, error) {
	n, ok := c.store.nodes[c.path]
	if !ok {
		return nil, nil
	}
	if n.document != nil {
		return n.document, nil
	}
	if len(n.children) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(n.children)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", apperrors.ErrStore, c.path, err)
	}
	return raw, nil
}

func (c *collection) WriteNew(ctx context.Context, record any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrStore, err)
	}
	raw, err := encode(record)
	if err != nil {
		return "", err
	}
	// v7 ids sort by creation time, like the remote store's push keys.
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%w: generate key: %w", apperrors.ErrStore, err)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	n, ok := c.store.nodes[c.path]
	if !ok || n.children == nil {
		n = &node{children: make(map[string]json.RawMessage)}
		c.store.nodes[c.path] = n
	}
	n.children[id.String()] = raw
	return id.String(), nil
}

func (c *collection) Replace(ctx context.Context, record any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStore, err)
	}
	raw, err := encode(record)
	if err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if raw == nil {
		delete(c.store.nodes, c.path)
		return nil
	}
	c.store.nodes[c.path] = &node{document: raw}
	return nil
}

func (c *collection) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStore, err)
	}
	if id == "" {
		return fmt.Errorf("%w: empty id", apperrors.ErrValidation)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if n, ok := c.store.nodes[c.path]; ok && n.children != nil {
		delete(n.children, id)
	}
	return nil
}

func (c *collection) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrStore, err)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	delete(c.store.nodes, c.path)
	return nil
}

// encode returns nil for records that serialize to JSON null.
func encode(record any) (json.RawMessage, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: encode record: %w", apperrors.ErrStore, err)
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}

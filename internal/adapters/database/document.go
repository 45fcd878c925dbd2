// Package database holds helpers shared by the document store adapters.
package database

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
)

var null = []byte("null")

// DecodeDocument unmarshals a raw store document into dest. An empty or
// JSON null document reports found=false and leaves dest untouched.
func DecodeDocument(raw json.RawMessage, dest any) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, null) {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, dest); err != nil {
		return false, fmt.Errorf("%w: decode document: %w", apperrors.ErrStore, err)
	}
	return true, nil
}

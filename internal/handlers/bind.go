package handlers

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSONObject decodes the request body into obj. Anything other than a
// JSON object, including a bare null, is a validation error.
func bindJSONObject(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %w", apperrors.ErrValidation, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return fmt.Errorf("%w: request body must be a JSON object", apperrors.ErrValidation)
	}
	if err := binding.JSON.BindBody(body, obj); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", apperrors.ErrValidation, err)
	}
	return nil
}

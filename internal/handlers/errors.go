package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError logs err at a level matching its kind and writes the JSON
// error body. Every failure maps to 500, including malformed input.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromContext(c)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
	case errors.Is(err, apperrors.ErrStoreNotInitialized):
		logger.Error(msg+": store is not initialized", slog.String("error", err.Error()))
	default:
		logger.Error(msg, slog.String("error", err.Error()))
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

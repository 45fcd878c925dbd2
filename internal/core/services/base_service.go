package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for defaults and server timestamps
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time according to the configured clock
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// GetLogger gets the request-scoped logger from context
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

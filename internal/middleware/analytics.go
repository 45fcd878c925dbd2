package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/platform/analytics"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware reports successful API calls to the tracker. There are
// no user accounts, so the client IP is the distinct id.
func AnalyticsMiddleware(tracker *analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracker.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// "/api/transactions/:id" -> "api_transactions_:id"
		route := c.FullPath()
		if !strings.HasPrefix(route, "/api/") {
			return
		}
		eventName := strings.ReplaceAll(strings.TrimPrefix(route, "/"), "/", "_")

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if requestID := c.Writer.Header().Get(RequestIDHeader); requestID != "" {
			props["request_id"] = requestID
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Capture(c.ClientIP(), eventName, props)
	}
}

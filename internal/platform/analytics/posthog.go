// Package analytics sends usage events to PostHog. A tracker built without
// an API key is a no-op, so callers never need to check for it.
package analytics

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is the PostHog ingestion host used when none is configured.
const DefaultEndpoint = "https://eu.i.posthog.com"

// Enqueuer is the part of posthog.Client the tracker uses.
type Enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// Tracker wraps a PostHog client and tolerates not being initialized.
type Tracker struct {
	client Enqueuer
	logger *slog.Logger
}

// NewTracker creates a tracker for apiKey. An empty key yields a disabled tracker.
func NewTracker(apiKey, endpoint string, logger *slog.Logger) (*Tracker, error) {
	if apiKey == "" {
		logger.Info("PostHog API key is empty, analytics disabled")
		return &Tracker{logger: logger}, nil
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to create posthog client: %w", err)
	}
	logger.Info("PostHog analytics enabled", slog.String("endpoint", endpoint))
	return NewTrackerWithClient(client, logger), nil
}

// NewTrackerWithClient wraps an existing client.
func NewTrackerWithClient(client Enqueuer, logger *slog.Logger) *Tracker {
	return &Tracker{client: client, logger: logger}
}

func (t *Tracker) Enabled() bool {
	return t != nil && t.client != nil
}

// Capture enqueues event for distinctID. Failures are logged and dropped.
func (t *Tracker) Capture(distinctID, event string, properties map[string]any) {
	if !t.Enabled() {
		return
	}
	err := t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && t.logger != nil {
		t.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (t *Tracker) Close() error {
	if !t.Enabled() {
		return nil
	}
	return t.client.Close()
}

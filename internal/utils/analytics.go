package utils

import (
	"log/slog"
	"time"

	"github.com/posthog/posthog-go"
)

const analyticsFlushInterval = 5 * time.Second

// PosthogClientWrapper forwards product analytics to PostHog. A zero value,
// or one built without an API key, drops every call.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// InitializePosthogClient connects to PostHog, or returns a disabled wrapper when apiKey is empty
// or the client cannot be built.
func InitializePosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClientWrapper {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, analytics disabled")
		return &PosthogClientWrapper{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{
		Endpoint: endpoint,
		Interval: analyticsFlushInterval,
	})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogClientWrapper{logger: logger}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

// Enqueue records event for the user identified by distinctID.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	w.report(event, w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}))
}

// IdentifyChannel attaches the public channel profile to a user so events group by channel.
func (w *PosthogClientWrapper) IdentifyChannel(userID, username, fullName string) {
	if !w.IsInitialized() {
		return
	}
	w.report("$identify", w.posthogClient.Enqueue(posthog.Identify{
		DistinctId: userID,
		Properties: posthog.NewProperties().
			Set("username", username).
			Set("name", fullName),
	}))
}

func (w *PosthogClientWrapper) report(event string, err error) {
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to flush analytics", slog.String("error", err.Error()))
	}
}

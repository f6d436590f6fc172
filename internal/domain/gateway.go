package domain

import (
	"context"
	"time"
)

// NotificationGateway delivers push notifications. The engine treats it as
// an external collaborator: partial failure is reported through the
// returned count, not an error.
type NotificationGateway interface {
	// SendBatch pushes one message to every token and returns the number
	// of accepted deliveries.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error)
}

// DispatchGuard deduplicates reminder dispatches across driver restarts
// and replicas: at most one dispatch per group per schedule minute.
type DispatchGuard interface {
	TryMarkDispatched(ctx context.Context, groupID string, minute time.Time) (bool, error)
}

// MinuteKey renders an instant as a minute-granularity key.
func MinuteKey(t time.Time) string {
	return t.UTC().Truncate(time.Minute).Format("2006-01-02-15-04")
}

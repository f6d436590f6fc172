// Package metrics defines the engine's OpenTelemetry instruments.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "zvit-status-engine"

// EngineMetrics carries the counters shared by the reminder driver and the
// urgent session manager. A nil receiver is a no-op so callers do not need
// to guard every increment.
type EngineMetrics struct {
	remindersDispatched metric.Int64Counter
	remindersDelivered  metric.Int64Counter
	urgentOpened        metric.Int64Counter
	urgentResponses     metric.Int64Counter
	sweepCleared        metric.Int64Counter
}

func NewEngineMetrics() (*EngineMetrics, error) {
	meter := otel.Meter(meterName)

	remindersDispatched, err := meter.Int64Counter(
		"reminder_dispatches_total",
		metric.WithDescription("Number of reminder dispatches fired, one per group per schedule mark"),
	)
	if err != nil {
		return nil, fmt.Errorf("create reminder_dispatches_total counter: %w", err)
	}

	remindersDelivered, err := meter.Int64Counter(
		"reminder_notifications_delivered_total",
		metric.WithDescription("Number of reminder notifications accepted by the push gateway"),
	)
	if err != nil {
		return nil, fmt.Errorf("create reminder_notifications_delivered_total counter: %w", err)
	}

	urgentOpened, err := meter.Int64Counter(
		"urgent_sessions_opened_total",
		metric.WithDescription("Number of urgent report sessions opened"),
	)
	if err != nil {
		return nil, fmt.Errorf("create urgent_sessions_opened_total counter: %w", err)
	}

	urgentResponses, err := meter.Int64Counter(
		"urgent_responses_recorded_total",
		metric.WithDescription("Number of urgent session responses recorded"),
	)
	if err != nil {
		return nil, fmt.Errorf("create urgent_responses_recorded_total counter: %w", err)
	}

	sweepCleared, err := meter.Int64Counter(
		"urgent_sessions_swept_total",
		metric.WithDescription("Number of expired urgent sessions cleared by the sweep job"),
	)
	if err != nil {
		return nil, fmt.Errorf("create urgent_sessions_swept_total counter: %w", err)
	}

	return &EngineMetrics{
		remindersDispatched: remindersDispatched,
		remindersDelivered:  remindersDelivered,
		urgentOpened:        urgentOpened,
		urgentResponses:     urgentResponses,
		sweepCleared:        sweepCleared,
	}, nil
}

func (m *EngineMetrics) ReminderDispatched(ctx context.Context, groupID string, delivered int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("group_id", groupID))
	m.remindersDispatched.Add(ctx, 1, attrs)
	m.remindersDelivered.Add(ctx, int64(delivered), attrs)
}

func (m *EngineMetrics) UrgentSessionOpened(ctx context.Context, groupID string) {
	if m == nil {
		return
	}
	m.urgentOpened.Add(ctx, 1, metric.WithAttributes(attribute.String("group_id", groupID)))
}

func (m *EngineMetrics) UrgentResponseRecorded(ctx context.Context, groupID string) {
	if m == nil {
		return
	}
	m.urgentResponses.Add(ctx, 1, metric.WithAttributes(attribute.String("group_id", groupID)))
}

func (m *EngineMetrics) UrgentSessionsSwept(ctx context.Context, cleared int64) {
	if m == nil || cleared == 0 {
		return
	}
	m.sweepCleared.Add(ctx, cleared)
}

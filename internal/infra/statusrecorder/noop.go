package statusrecorder

import (
	"context"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.StatusRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordReminderDispatch(_ context.Context, _ domain.ReminderDispatchRecord) error {
	return nil
}

func (n *noopRecorder) RecordUrgentSession(_ context.Context, _ domain.UrgentSessionRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}

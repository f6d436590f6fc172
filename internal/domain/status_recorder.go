package domain

import (
	"context"
	"time"
)

type ReminderDispatchRecord struct {
	GroupID    string
	GroupName  string
	FiredAt    time.Time
	Candidates int
	Delivered  int
}

type UrgentSessionRecord struct {
	SessionID      string
	GroupID        string
	OpenedAt       time.Time
	ClosedAt       time.Time
	Expired        bool
	TotalMembers   int
	RespondedCount int
}

// StatusRecorder writes compliance events to a time-series sink for later
// analysis. Recording failures are logged by implementations and never
// fail the operation that produced the event.
type StatusRecorder interface {
	RecordReminderDispatch(ctx context.Context, record ReminderDispatchRecord) error
	RecordUrgentSession(ctx context.Context, record UrgentSessionRecord) error
	Close() error
}

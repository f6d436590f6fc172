package domain

import (
	"time"
)

// UrgentSession is one ad-hoc, time-boxed collection window. It lives in
// the group's urgent slot; session ids are fresh per window and never
// reused, so response rows stay attributable after the slot is cleared.
type UrgentSession struct {
	ID          string
	GroupID     string
	RequestedAt time.Time
	ExpiresAt   time.Time
	RequestedBy string
	Message     string
}

func (s UrgentSession) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

func (s UrgentSession) RemainingSeconds(now time.Time) int64 {
	remaining := int64(s.ExpiresAt.Sub(now) / time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}

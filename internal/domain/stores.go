package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks.go -package=domain . GroupStore,MemberStore,UserStore,ReportStore,UrgentResponseStore,NotificationGateway,DispatchGuard,StatusRecorder

type GroupStore interface {
	FindGroup(ctx context.Context, id string) (*Group, error)

	// ListScheduled returns every group with a configured schedule.
	ListScheduled(ctx context.Context) ([]Group, error)

	UpdateSchedule(ctx context.Context, groupID string, cfg ScheduleConfig) error

	// ClaimUrgentSession atomically installs the session into the group's
	// urgent slot if the slot is empty or holds an expired session. It
	// returns false when a live session already occupies the slot, so a
	// race between two creators resolves to exactly one winner.
	ClaimUrgentSession(ctx context.Context, session UrgentSession, now time.Time) (bool, error)

	// ClearUrgentSession empties the urgent slot if it still holds the
	// given session id. Response rows are left untouched.
	ClearUrgentSession(ctx context.Context, groupID, sessionID string) (bool, error)

	// SweepExpiredSessions clears every fully-expired urgent slot and
	// returns the number of groups affected. Safe to call repeatedly.
	SweepExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type MemberStore interface {
	// AcceptedMembers returns the group's accepted members with the user
	// record attached.
	AcceptedMembers(ctx context.Context, groupID string) ([]GroupMember, error)

	FindMember(ctx context.Context, groupID, userID string) (*GroupMember, error)
}

type UserStore interface {
	FindUser(ctx context.Context, id string) (*User, error)
}

type ReportStore interface {
	Create(ctx context.Context, report *Report) error

	// LastReport returns the member's most recent report in the group, or
	// nil when they have never reported.
	LastReport(ctx context.Context, groupID, userID string) (*Report, error)

	ListGroupReports(ctx context.Context, groupID string) ([]Report, error)
	ListUserReports(ctx context.Context, groupID, userID string) ([]Report, error)
}

type UrgentResponseStore interface {
	// Insert stores the response unless a row for the same (session, user)
	// pair already exists; it reports whether the row was written. The
	// uniqueness constraint, not a lock, resolves concurrent submissions.
	Insert(ctx context.Context, response *UrgentResponse) (bool, error)

	// FindBySessionAndUser returns nil without error when the member has
	// not responded.
	FindBySessionAndUser(ctx context.Context, sessionID, userID string) (*UrgentResponse, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}

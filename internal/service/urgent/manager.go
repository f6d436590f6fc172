// Package urgent manages ad-hoc, time-boxed report collection windows.
package urgent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/observability/metrics"
)

const (
	// DefaultDeadlineMinutes applies when the request leaves the deadline
	// unset.
	DefaultDeadlineMinutes = 30

	MinDeadlineMinutes = 5
	MaxDeadlineMinutes = 120

	MaxMessageLength = 200
)

// Manager owns the urgent session lifecycle: opening a session (with a
// single-flight guarantee per group), recording member responses, closing,
// and sweeping expired slots.
type Manager struct {
	groups    domain.GroupStore
	members   domain.MemberStore
	users     domain.UserStore
	responses domain.UrgentResponseStore
	gateway   domain.NotificationGateway
	recorder  domain.StatusRecorder
	metrics   *metrics.EngineMetrics
}

func NewManager(
	groups domain.GroupStore,
	members domain.MemberStore,
	users domain.UserStore,
	responses domain.UrgentResponseStore,
	gateway domain.NotificationGateway,
	recorder domain.StatusRecorder,
	m *metrics.EngineMetrics,
) *Manager {
	return &Manager{
		groups:    groups,
		members:   members,
		users:     users,
		responses: responses,
		gateway:   gateway,
		recorder:  recorder,
		metrics:   m,
	}
}

// CreateResult describes a freshly opened session.
type CreateResult struct {
	Session       domain.UrgentSession
	NotifiedCount int
}

// Create opens an urgent session for the group. Only one live session may
// exist per group; the slot claim is atomic, so of two concurrent creators
// exactly one wins and the other receives ErrUrgentSessionActive.
func (m *Manager) Create(ctx context.Context, groupID, requesterID string, deadlineMinutes int, message string, now time.Time) (*CreateResult, error) {
	if deadlineMinutes == 0 {
		deadlineMinutes = DefaultDeadlineMinutes
	}
	if deadlineMinutes < MinDeadlineMinutes || deadlineMinutes > MaxDeadlineMinutes {
		return nil, domain.ErrInvalidDeadline
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	group, err := m.groups.FindGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}

	member, err := m.members.FindMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	if !member.Role.HasAdminRights() {
		return nil, domain.ErrNotAuthorized
	}

	session := domain.UrgentSession{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		RequestedAt: now,
		ExpiresAt:   now.Add(time.Duration(deadlineMinutes) * time.Minute),
		RequestedBy: requesterID,
		Message:     message,
	}

	claimed, err := m.groups.ClaimUrgentSession(ctx, session, now)
	if err != nil {
		return nil, fmt.Errorf("claim urgent session: %w", err)
	}
	if !claimed {
		return nil, domain.ErrUrgentSessionActive
	}

	notified := m.notify(ctx, group, session, deadlineMinutes)
	m.metrics.UrgentSessionOpened(ctx, groupID)

	slog.InfoContext(ctx, "urgent session opened",
		slog.String("groupId", groupID),
		slog.String("sessionId", session.ID),
		slog.Int("deadlineMinutes", deadlineMinutes),
		slog.Int("notified", notified),
	)

	return &CreateResult{Session: session, NotifiedCount: notified}, nil
}

// End closes the group's urgent session ahead of its deadline. Response
// rows are kept; only the slot is cleared.
func (m *Manager) End(ctx context.Context, groupID, requesterID string, now time.Time) error {
	group, err := m.groups.FindGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("find group: %w", err)
	}

	member, err := m.members.FindMember(ctx, groupID, requesterID)
	if err != nil {
		return fmt.Errorf("find member: %w", err)
	}
	if !member.Role.HasAdminRights() {
		return domain.ErrNotAuthorized
	}

	if group.UrgentSessionID == nil {
		return domain.ErrNoActiveSession
	}
	sessionID := *group.UrgentSessionID

	cleared, err := m.groups.ClearUrgentSession(ctx, groupID, sessionID)
	if err != nil {
		return fmt.Errorf("clear urgent session: %w", err)
	}
	if !cleared {
		// Lost a race with another closer or the sweep.
		return domain.ErrNoActiveSession
	}

	m.recordClosure(ctx, group, sessionID, now)

	slog.InfoContext(ctx, "urgent session closed",
		slog.String("groupId", groupID),
		slog.String("sessionId", sessionID),
	)
	return nil
}

// RecordResponseIfActive links a freshly submitted report to the group's
// urgent session. It is a no-op when no session is live or when the
// reporter is an admin; a repeated submission by the same member keeps the
// first response row.
func (m *Manager) RecordResponseIfActive(ctx context.Context, group *domain.Group, role domain.Role, userID, reportID string, now time.Time) error {
	if !group.UrgentSessionActive(now) || role == domain.RoleAdmin {
		return nil
	}

	inserted, err := m.responses.Insert(ctx, &domain.UrgentResponse{
		ID:              uuid.NewString(),
		UrgentSessionID: *group.UrgentSessionID,
		UserID:          userID,
		GroupID:         group.ID,
		ReportID:        reportID,
		RespondedAt:     now,
	})
	if err != nil {
		return fmt.Errorf("insert urgent response: %w", err)
	}
	if inserted {
		m.metrics.UrgentResponseRecorded(ctx, group.ID)
	}
	return nil
}

// Progress is the live view of a group's urgent slot.
type Progress struct {
	Active           bool
	SessionID        string
	RequestedAt      *time.Time
	ExpiresAt        *time.Time
	Message          string
	RequestedByName  string
	TotalMembers     int
	RespondedCount   int
	RemainingSeconds int64
}

// Progress reports the state of the group's urgent slot. The group record
// is passed in by the caller, who has already loaded it.
func (m *Manager) Progress(ctx context.Context, group *domain.Group, now time.Time) (Progress, error) {
	if !group.UrgentSessionActive(now) {
		return Progress{}, nil
	}

	session := domain.UrgentSession{
		ID:        *group.UrgentSessionID,
		ExpiresAt: *group.UrgentExpiresAt,
	}

	progress := Progress{
		Active:           true,
		SessionID:        session.ID,
		RequestedAt:      group.UrgentRequestedAt,
		ExpiresAt:        group.UrgentExpiresAt,
		RemainingSeconds: session.RemainingSeconds(now),
	}
	if group.UrgentMessage != nil {
		progress.Message = *group.UrgentMessage
	}

	if group.UrgentRequestedBy != nil {
		requester, err := m.users.FindUser(ctx, *group.UrgentRequestedBy)
		if err == nil {
			progress.RequestedByName = requester.Name
		}
	}

	total, err := m.countRespondents(ctx, group.ID)
	if err != nil {
		return Progress{}, err
	}
	progress.TotalMembers = total

	responded, err := m.responses.CountBySession(ctx, session.ID)
	if err != nil {
		return Progress{}, fmt.Errorf("count responses: %w", err)
	}
	progress.RespondedCount = int(responded)

	return progress, nil
}

// Sweep clears every expired urgent slot across all groups. It is run
// periodically and is safe to repeat.
func (m *Manager) Sweep(ctx context.Context, now time.Time) (int64, error) {
	cleared, err := m.groups.SweepExpiredSessions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("sweep expired sessions: %w", err)
	}
	if cleared > 0 {
		m.metrics.UrgentSessionsSwept(ctx, cleared)
		slog.InfoContext(ctx, "expired urgent sessions cleared", slog.Int64("count", cleared))
	}
	return cleared, nil
}

// notify pushes the urgent request to every accepted member except the
// requester. Urgent pushes go to both the native and the web token.
func (m *Manager) notify(ctx context.Context, group *domain.Group, session domain.UrgentSession, deadlineMinutes int) int {
	members, err := m.members.AcceptedMembers(ctx, group.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load members for urgent push",
			slog.String("groupId", group.ID),
			slog.String("error", err.Error()),
		)
		return 0
	}

	var tokens []string
	for _, member := range members {
		if member.UserID == session.RequestedBy || member.User == nil {
			continue
		}
		if !member.User.NotificationsEnabled {
			continue
		}
		if member.User.FCMToken != "" {
			tokens = append(tokens, member.User.FCMToken)
		}
		if member.User.FCMTokenWeb != "" {
			tokens = append(tokens, member.User.FCMTokenWeb)
		}
	}
	if len(tokens) == 0 {
		return 0
	}

	// The message goes out verbatim, even when empty; the client renders
	// the deadline from the data payload.
	delivered, err := m.gateway.SendBatch(ctx, tokens,
		"Терміновий звіт: "+group.Name,
		session.Message,
		map[string]string{
			"type":            "URGENT_REPORT",
			"groupId":         group.ID,
			"groupName":       group.Name,
			"deadlineMinutes": strconv.Itoa(deadlineMinutes),
			"urgentSessionId": session.ID,
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "urgent push delivery failed",
			slog.String("groupId", group.ID),
			slog.String("sessionId", session.ID),
			slog.String("error", err.Error()),
		)
	}
	return delivered
}

// recordClosure writes the session summary to the status recorder. Failures
// are logged, never surfaced: closing the session must not depend on the
// analytics sink.
func (m *Manager) recordClosure(ctx context.Context, group *domain.Group, sessionID string, now time.Time) {
	total, err := m.countRespondents(ctx, group.ID)
	if err != nil {
		slog.WarnContext(ctx, "failed to count members for session record",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)
	}

	responded, err := m.responses.CountBySession(ctx, sessionID)
	if err != nil {
		slog.WarnContext(ctx, "failed to count responses for session record",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)
	}

	record := domain.UrgentSessionRecord{
		SessionID:      sessionID,
		GroupID:        group.ID,
		ClosedAt:       now,
		Expired:        group.UrgentExpiresAt != nil && !now.Before(*group.UrgentExpiresAt),
		TotalMembers:   total,
		RespondedCount: int(responded),
	}
	if group.UrgentRequestedAt != nil {
		record.OpenedAt = *group.UrgentRequestedAt
	}

	if err := m.recorder.RecordUrgentSession(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record urgent session",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)
	}
}

// countRespondents counts accepted members expected to respond, i.e.
// everyone but admins.
func (m *Manager) countRespondents(ctx context.Context, groupID string) (int, error) {
	members, err := m.members.AcceptedMembers(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("list members: %w", err)
	}

	total := 0
	for _, member := range members {
		if member.Role != domain.RoleAdmin {
			total++
		}
	}
	return total, nil
}

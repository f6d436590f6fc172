// Package reminder drives scheduled reminder notifications. A single
// minute-aligned ticker scans every scheduled group and fires the ones
// whose schedule has a mark at the current minute.
package reminder

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/observability/metrics"
	"github.com/zvitapp/zvit-status-engine/internal/service/trigger"
)

const (
	reminderTitle = "⏰ Час звітувати!"
	reminderType  = "REMINDER"
)

type Ticker struct {
	groups   domain.GroupStore
	members  domain.MemberStore
	gateway  domain.NotificationGateway
	guard    domain.DispatchGuard
	recorder domain.StatusRecorder
	metrics  *metrics.EngineMetrics
	clock    domain.Clock

	// running guards against overlapping scans when one tick outlives the
	// minute that started it.
	running atomic.Bool
}

func NewTicker(
	groups domain.GroupStore,
	members domain.MemberStore,
	gateway domain.NotificationGateway,
	guard domain.DispatchGuard,
	recorder domain.StatusRecorder,
	m *metrics.EngineMetrics,
	clock domain.Clock,
) *Ticker {
	return &Ticker{
		groups:   groups,
		members:  members,
		gateway:  gateway,
		guard:    guard,
		recorder: recorder,
		metrics:  m,
		clock:    clock,
	}
}

// Start blocks until ctx is cancelled, scanning once per wall-clock
// minute. The first scan is aligned to the next minute boundary so that
// fixed-time marks are evaluated at HH:mm:00.
func (t *Ticker) Start(ctx context.Context) {
	now := t.clock.Now()
	firstDelay := now.Truncate(time.Minute).Add(time.Minute).Sub(now)

	slog.InfoContext(ctx, "reminder ticker starting",
		slog.Duration("firstDelay", firstDelay),
	)

	timer := time.NewTimer(firstDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	t.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "reminder ticker stopped")
			return
		case <-ticker.C:
			t.scan(ctx)
		}
	}
}

func (t *Ticker) scan(ctx context.Context) {
	if !t.running.CompareAndSwap(false, true) {
		slog.WarnContext(ctx, "previous reminder scan still running, skipping minute")
		return
	}
	defer t.running.Store(false)

	t.Tick(ctx, t.clock.Now())
}

// Tick evaluates every scheduled group at the given instant, truncated to
// the minute. A failure in one group never blocks the others.
func (t *Ticker) Tick(ctx context.Context, now time.Time) {
	now = now.Truncate(time.Minute)

	groups, err := t.groups.ListScheduled(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list scheduled groups",
			slog.String("error", err.Error()),
		)
		return
	}

	for i := range groups {
		t.tickGroup(ctx, &groups[i], now)
	}
}

func (t *Ticker) tickGroup(ctx context.Context, group *domain.Group, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic while processing group",
				slog.String("groupId", group.ID),
				slog.Any("panic", r),
			)
		}
	}()

	localNow := now.In(group.Location())
	if !trigger.ShouldFire(group.Schedule(), localNow) {
		return
	}

	// One dispatch per group per minute, across replicas and restarts.
	fresh, err := t.guard.TryMarkDispatched(ctx, group.ID, now)
	if err != nil {
		slog.ErrorContext(ctx, "dispatch guard unavailable",
			slog.String("groupId", group.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	if !fresh {
		return
	}

	t.dispatch(ctx, group, now)
}

func (t *Ticker) dispatch(ctx context.Context, group *domain.Group, now time.Time) {
	members, err := t.members.AcceptedMembers(ctx, group.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load members for reminder",
			slog.String("groupId", group.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	tokens, candidates := reminderTokens(members)

	delivered := 0
	if len(tokens) > 0 {
		delivered, err = t.gateway.SendBatch(ctx, tokens,
			reminderTitle,
			group.Name+" - надішліть свій звіт",
			map[string]string{
				"type":      reminderType,
				"groupId":   group.ID,
				"groupName": group.Name,
			},
		)
		if err != nil {
			slog.ErrorContext(ctx, "reminder delivery failed",
				slog.String("groupId", group.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	t.metrics.ReminderDispatched(ctx, group.ID, delivered)

	if err := t.recorder.RecordReminderDispatch(ctx, domain.ReminderDispatchRecord{
		GroupID:    group.ID,
		GroupName:  group.Name,
		FiredAt:    now,
		Candidates: candidates,
		Delivered:  delivered,
	}); err != nil {
		slog.WarnContext(ctx, "failed to record reminder dispatch",
			slog.String("groupId", group.ID),
			slog.String("error", err.Error()),
		)
	}

	slog.InfoContext(ctx, "reminder dispatched",
		slog.String("groupId", group.ID),
		slog.String("groupName", group.Name),
		slog.Int("candidates", candidates),
		slog.Int("delivered", delivered),
	)
}

// reminderTokens selects the push tokens for a reminder. Admins are exempt
// from reporting and get no reminder. Members holding a native app token
// are excluded entirely: the app schedules local reminders, a server push
// would double them. Only web-only members receive the dispatch.
func reminderTokens(members []domain.GroupMember) ([]string, int) {
	var tokens []string
	candidates := 0
	for _, member := range members {
		if member.Role == domain.RoleAdmin || member.User == nil {
			continue
		}
		if !member.User.NotificationsEnabled {
			continue
		}
		if member.User.FCMToken != "" {
			continue
		}
		candidates++
		if member.User.FCMTokenWeb != "" {
			tokens = append(tokens, member.User.FCMTokenWeb)
		}
	}
	return tokens, candidates
}

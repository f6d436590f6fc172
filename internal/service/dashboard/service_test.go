package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

type deps struct {
	groups    *domain.MockGroupStore
	members   *domain.MockMemberStore
	reports   *domain.MockReportStore
	responses *domain.MockUrgentResponseStore
	users     *domain.MockUserStore
}

func newService(t *testing.T) (*Service, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := deps{
		groups:    domain.NewMockGroupStore(ctrl),
		members:   domain.NewMockMemberStore(ctrl),
		reports:   domain.NewMockReportStore(ctrl),
		responses: domain.NewMockUrgentResponseStore(ctrl),
		users:     domain.NewMockUserStore(ctrl),
	}
	urgentManager := urgent.NewManager(
		d.groups,
		d.members,
		d.users,
		d.responses,
		domain.NewMockNotificationGateway(ctrl),
		domain.NewMockStatusRecorder(ctrl),
		nil,
	)
	return NewService(d.groups, d.members, d.reports, d.responses, urgentManager), d
}

func utcGroup() *domain.Group {
	mark1, mark2 := "09:00", "21:00"
	return &domain.Group{
		ID:           "group-1",
		Name:         "Night Shift",
		Timezone:     "UTC",
		ScheduleType: domain.ScheduleFixedTimes,
		FixedTime1:   &mark1,
		FixedTime2:   &mark2,
	}
}

func acceptedMember(userID string, role domain.Role, name string) domain.GroupMember {
	return domain.GroupMember{
		GroupID: "group-1",
		UserID:  userID,
		Role:    role,
		State:   domain.MemberAccepted,
		User:    &domain.User{ID: userID, Name: name},
	}
}

func TestComputeGroupStatuses(t *testing.T) {
	s, d := newService(t)
	ctx := context.Background()
	now := time.Date(2024, time.January, 10, 10, 0, 0, 0, time.UTC)

	d.groups.EXPECT().FindGroup(ctx, "group-1").Return(utcGroup(), nil)
	d.members.EXPECT().FindMember(ctx, "group-1", "user-1").
		Return(&domain.GroupMember{Role: domain.RoleMember}, nil)
	d.members.EXPECT().AcceptedMembers(ctx, "group-1").Return([]domain.GroupMember{
		acceptedMember("admin-1", domain.RoleAdmin, "Олена"),
		acceptedMember("user-1", domain.RoleMember, "Тарас"),
		acceptedMember("user-2", domain.RoleMember, "Ірина"),
	}, nil)

	fresh := time.Date(2024, time.January, 10, 9, 5, 0, 0, time.UTC)
	d.reports.EXPECT().LastReport(ctx, "group-1", "admin-1").Return(nil, nil)
	d.reports.EXPECT().LastReport(ctx, "group-1", "user-1").
		Return(&domain.Report{SubmittedAt: fresh}, nil)
	d.reports.EXPECT().LastReport(ctx, "group-1", "user-2").Return(nil, nil)

	board, err := s.ComputeGroupStatuses(ctx, "group-1", "user-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if board.GroupName != "Night Shift" {
		t.Errorf("group name: got %s", board.GroupName)
	}
	if board.PreviousReportAt == nil || board.NextReportAt == nil {
		t.Fatal("cycle boundaries must be set for a configured schedule")
	}
	wantPrev := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	wantNext := time.Date(2024, time.January, 10, 21, 0, 0, 0, time.UTC)
	if !board.PreviousReportAt.Equal(wantPrev) {
		t.Errorf("previous: got %v, want %v", board.PreviousReportAt, wantPrev)
	}
	if !board.NextReportAt.Equal(wantNext) {
		t.Errorf("next: got %v, want %v", board.NextReportAt, wantNext)
	}
	if board.Urgent.Active {
		t.Error("no urgent session expected")
	}

	if len(board.Members) != 3 {
		t.Fatalf("rows: got %d, want 3", len(board.Members))
	}

	rows := map[string]MemberStatus{}
	for _, row := range board.Members {
		rows[row.UserID] = row
	}

	if got := rows["admin-1"]; got.ColorHex != "#006400" {
		t.Errorf("admin color: got %s, want #006400", got.ColorHex)
	}
	if got := rows["user-1"]; got.ColorHex != "#C8E6C9" || got.Percentage == nil || *got.Percentage != 25 {
		t.Errorf("reporter row: got %s / %v", got.ColorHex, got.Percentage)
	}
	if got := rows["user-2"]; got.ColorHex != "#E0E0E0" || got.Percentage != nil {
		t.Errorf("silent row: got %s / %v", got.ColorHex, got.Percentage)
	}
	if rows["user-1"].Name != "Тарас" {
		t.Errorf("name: got %s", rows["user-1"].Name)
	}
}

func TestComputeGroupStatusesUnscheduledGroup(t *testing.T) {
	s, d := newService(t)
	ctx := context.Background()
	now := time.Date(2024, time.January, 10, 10, 0, 0, 0, time.UTC)

	d.groups.EXPECT().FindGroup(ctx, "group-1").
		Return(&domain.Group{ID: "group-1", Timezone: "UTC"}, nil)
	d.members.EXPECT().FindMember(ctx, "group-1", "user-1").
		Return(&domain.GroupMember{Role: domain.RoleMember}, nil)
	d.members.EXPECT().AcceptedMembers(ctx, "group-1").Return([]domain.GroupMember{
		acceptedMember("user-1", domain.RoleMember, "Тарас"),
	}, nil)
	fresh := now.Add(-time.Hour)
	d.reports.EXPECT().LastReport(ctx, "group-1", "user-1").
		Return(&domain.Report{SubmittedAt: fresh}, nil)

	board, err := s.ComputeGroupStatuses(ctx, "group-1", "user-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if board.PreviousReportAt != nil || board.NextReportAt != nil {
		t.Error("unscheduled group must have no cycle boundaries")
	}
	// Even a recent report is neutral without a schedule.
	if got := board.Members[0]; got.ColorHex != "#E0E0E0" {
		t.Errorf("color: got %s, want #E0E0E0", got.ColorHex)
	}
}

func TestComputeGroupStatusesWithUrgentSession(t *testing.T) {
	s, d := newService(t)
	ctx := context.Background()
	now := time.Date(2024, time.January, 10, 10, 0, 0, 0, time.UTC)

	sessionID := "sess-1"
	requestedBy := "admin-1"
	requestedAt := now.Add(-5 * time.Minute)
	expiresAt := now.Add(25 * time.Minute)

	g := utcGroup()
	g.UrgentSessionID = &sessionID
	g.UrgentRequestedAt = &requestedAt
	g.UrgentExpiresAt = &expiresAt
	g.UrgentRequestedBy = &requestedBy

	d.groups.EXPECT().FindGroup(ctx, "group-1").Return(g, nil)
	d.members.EXPECT().FindMember(ctx, "group-1", "admin-1").
		Return(&domain.GroupMember{Role: domain.RoleAdmin}, nil)

	members := []domain.GroupMember{
		acceptedMember("user-1", domain.RoleMember, "Тарас"),
		acceptedMember("user-2", domain.RoleMember, "Ірина"),
	}
	// Once for the board, once for the urgent member count.
	d.members.EXPECT().AcceptedMembers(ctx, "group-1").Return(members, nil).Times(2)

	d.users.EXPECT().FindUser(ctx, "admin-1").Return(&domain.User{ID: "admin-1", Name: "Олена"}, nil)
	d.responses.EXPECT().CountBySession(ctx, sessionID).Return(int64(1), nil)

	d.reports.EXPECT().LastReport(ctx, "group-1", "user-1").Return(nil, nil)
	d.reports.EXPECT().LastReport(ctx, "group-1", "user-2").Return(nil, nil)

	respondedAt := now.Add(-2 * time.Minute)
	d.responses.EXPECT().FindBySessionAndUser(ctx, sessionID, "user-1").
		Return(&domain.UrgentResponse{RespondedAt: respondedAt}, nil)
	d.responses.EXPECT().FindBySessionAndUser(ctx, sessionID, "user-2").Return(nil, nil)

	board, err := s.ComputeGroupStatuses(ctx, "group-1", "admin-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !board.Urgent.Active {
		t.Fatal("urgent session must be visible")
	}
	if board.Urgent.RespondedCount != 1 || board.Urgent.TotalMembers != 2 {
		t.Errorf("urgent counts: got %d/%d, want 1/2", board.Urgent.RespondedCount, board.Urgent.TotalMembers)
	}
	if board.Urgent.RequestedByName != "Олена" {
		t.Errorf("requester name: got %s", board.Urgent.RequestedByName)
	}

	rows := map[string]MemberStatus{}
	for _, row := range board.Members {
		rows[row.UserID] = row
	}
	if rows["user-1"].UrgentRespondedAt == nil || !rows["user-1"].UrgentRespondedAt.Equal(respondedAt) {
		t.Errorf("user-1 responded at: got %v", rows["user-1"].UrgentRespondedAt)
	}
	if rows["user-2"].UrgentRespondedAt != nil {
		t.Error("user-2 must have no response mark")
	}
}

func TestComputeGroupStatusesAuthorization(t *testing.T) {
	t.Run("unknown group", func(t *testing.T) {
		s, d := newService(t)
		ctx := context.Background()

		d.groups.EXPECT().FindGroup(ctx, "missing").Return(nil, domain.ErrGroupNotFound)

		_, err := s.ComputeGroupStatuses(ctx, "missing", "user-1", time.Now())
		if !errors.Is(err, domain.ErrGroupNotFound) {
			t.Errorf("got %v, want %v", err, domain.ErrGroupNotFound)
		}
	})

	t.Run("requester is not a member", func(t *testing.T) {
		s, d := newService(t)
		ctx := context.Background()

		d.groups.EXPECT().FindGroup(ctx, "group-1").Return(utcGroup(), nil)
		d.members.EXPECT().FindMember(ctx, "group-1", "stranger").Return(nil, domain.ErrNotMember)

		_, err := s.ComputeGroupStatuses(ctx, "group-1", "stranger", time.Now())
		if !errors.Is(err, domain.ErrNotMember) {
			t.Errorf("got %v, want %v", err, domain.ErrNotMember)
		}
	})
}

func TestComputeGroupStatusesUsesGroupTimezone(t *testing.T) {
	s, d := newService(t)
	ctx := context.Background()

	// 06:30 UTC is 08:30 in Kyiv (winter, UTC+2): the 09:00 mark has not
	// passed yet in the group's zone, so yesterday's 21:00 is the previous
	// boundary.
	now := time.Date(2024, time.January, 10, 6, 30, 0, 0, time.UTC)

	g := utcGroup()
	g.Timezone = "Europe/Kyiv"

	d.groups.EXPECT().FindGroup(ctx, "group-1").Return(g, nil)
	d.members.EXPECT().FindMember(ctx, "group-1", "user-1").
		Return(&domain.GroupMember{Role: domain.RoleMember}, nil)
	d.members.EXPECT().AcceptedMembers(ctx, "group-1").Return(nil, nil)

	board, err := s.ComputeGroupStatuses(ctx, "group-1", "user-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Skip("zone database unavailable")
	}
	wantPrev := time.Date(2024, time.January, 9, 21, 0, 0, 0, kyiv)
	wantNext := time.Date(2024, time.January, 10, 9, 0, 0, 0, kyiv)
	if !board.PreviousReportAt.Equal(wantPrev) {
		t.Errorf("previous: got %v, want %v", board.PreviousReportAt, wantPrev)
	}
	if !board.NextReportAt.Equal(wantNext) {
		t.Errorf("next: got %v, want %v", board.NextReportAt, wantNext)
	}
}

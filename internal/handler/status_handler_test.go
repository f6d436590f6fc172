package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/dashboard"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

type statusMocks struct {
	groups    *domain.MockGroupStore
	members   *domain.MockMemberStore
	reports   *domain.MockReportStore
	responses *domain.MockUrgentResponseStore
}

func setupStatusRouter(t *testing.T) (*gin.Engine, statusMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	m := statusMocks{
		groups:    domain.NewMockGroupStore(ctrl),
		members:   domain.NewMockMemberStore(ctrl),
		reports:   domain.NewMockReportStore(ctrl),
		responses: domain.NewMockUrgentResponseStore(ctrl),
	}
	manager := urgent.NewManager(
		m.groups,
		m.members,
		domain.NewMockUserStore(ctrl),
		m.responses,
		domain.NewMockNotificationGateway(ctrl),
		domain.NewMockStatusRecorder(ctrl),
		nil,
	)
	service := dashboard.NewService(m.groups, m.members, m.reports, m.responses, manager)
	h := NewStatusHandler(service, fixedClock{})

	r := gin.New()
	r.GET("/api/v1/groups/:groupId/statuses", h.HandleGroupStatuses)
	return r, m
}

func TestHandleGroupStatuses(t *testing.T) {
	t.Run("returns the board", func(t *testing.T) {
		r, m := setupStatusRouter(t)

		mark1, mark2 := "09:00", "21:00"
		g := &domain.Group{
			ID:           "group-1",
			Name:         "Night Shift",
			Timezone:     "UTC",
			ScheduleType: domain.ScheduleFixedTimes,
			FixedTime1:   &mark1,
			FixedTime2:   &mark2,
		}

		m.groups.EXPECT().FindGroup(gomock.Any(), "group-1").Return(g, nil)
		m.members.EXPECT().FindMember(gomock.Any(), "group-1", "user-1").
			Return(&domain.GroupMember{Role: domain.RoleMember}, nil)
		m.members.EXPECT().AcceptedMembers(gomock.Any(), "group-1").Return([]domain.GroupMember{
			{
				GroupID: "group-1",
				UserID:  "user-1",
				Role:    domain.RoleMember,
				State:   domain.MemberAccepted,
				User:    &domain.User{ID: "user-1", Name: "Тарас"},
			},
		}, nil)
		fresh := time.Date(2024, time.January, 10, 9, 5, 0, 0, time.UTC)
		m.reports.EXPECT().LastReport(gomock.Any(), "group-1", "user-1").
			Return(&domain.Report{SubmittedAt: fresh}, nil)

		w := doJSON(t, r, http.MethodGet, "/api/v1/groups/group-1/statuses", "user-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d (%s)", w.Code, http.StatusOK, w.Body.String())
		}

		var resp struct {
			GroupName string `json:"groupName"`
			Members   []struct {
				UserID     string   `json:"userId"`
				ColorHex   string   `json:"colorHex"`
				Percentage *float64 `json:"percentage"`
			} `json:"members"`
			UrgentSession struct {
				Active bool `json:"active"`
			} `json:"urgentSession"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}

		if resp.GroupName != "Night Shift" {
			t.Errorf("groupName: got %s", resp.GroupName)
		}
		if len(resp.Members) != 1 {
			t.Fatalf("members: got %d, want 1", len(resp.Members))
		}
		// 12:00 against a 09:00-21:00 cycle with a fresh report.
		if resp.Members[0].ColorHex != "#C8E6C9" {
			t.Errorf("colorHex: got %s, want #C8E6C9", resp.Members[0].ColorHex)
		}
		if resp.Members[0].Percentage == nil || *resp.Members[0].Percentage != 25 {
			t.Errorf("percentage: got %v, want 25", resp.Members[0].Percentage)
		}
		if resp.UrgentSession.Active {
			t.Error("no urgent session expected")
		}
	})

	t.Run("unknown group maps to 404", func(t *testing.T) {
		r, m := setupStatusRouter(t)

		m.groups.EXPECT().FindGroup(gomock.Any(), "missing").Return(nil, domain.ErrGroupNotFound)

		w := doJSON(t, r, http.MethodGet, "/api/v1/groups/missing/statuses", "user-1", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("non-member maps to 403", func(t *testing.T) {
		r, m := setupStatusRouter(t)

		m.groups.EXPECT().FindGroup(gomock.Any(), "group-1").
			Return(&domain.Group{ID: "group-1", Timezone: "UTC"}, nil)
		m.members.EXPECT().FindMember(gomock.Any(), "group-1", "stranger").
			Return(nil, domain.ErrNotMember)

		w := doJSON(t, r, http.MethodGet, "/api/v1/groups/group-1/statuses", "stranger", nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}

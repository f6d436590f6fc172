package group

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

func newService(t *testing.T) (*Service, *domain.MockGroupStore, *domain.MockMemberStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	groups := domain.NewMockGroupStore(ctrl)
	members := domain.NewMockMemberStore(ctrl)
	return NewService(groups, members), groups, members
}

func TestUpdateSchedule(t *testing.T) {
	valid := domain.ScheduleConfig{
		Type:       domain.ScheduleFixedTimes,
		FixedTimes: []string{"09:00", "21:00"},
	}

	t.Run("admin updates the schedule", func(t *testing.T) {
		s, groups, members := newService(t)
		ctx := context.Background()

		groups.EXPECT().FindGroup(ctx, "group-1").Return(&domain.Group{ID: "group-1"}, nil)
		members.EXPECT().FindMember(ctx, "group-1", "admin-1").
			Return(&domain.GroupMember{Role: domain.RoleAdmin}, nil)
		groups.EXPECT().UpdateSchedule(ctx, "group-1", valid).Return(nil)

		if err := s.UpdateSchedule(ctx, "group-1", "admin-1", valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("members are denied", func(t *testing.T) {
		s, groups, members := newService(t)
		ctx := context.Background()

		groups.EXPECT().FindGroup(ctx, "group-1").Return(&domain.Group{ID: "group-1"}, nil)
		members.EXPECT().FindMember(ctx, "group-1", "user-1").
			Return(&domain.GroupMember{Role: domain.RoleMember}, nil)

		if err := s.UpdateSchedule(ctx, "group-1", "user-1", valid); !errors.Is(err, domain.ErrNotAuthorized) {
			t.Errorf("got %v, want %v", err, domain.ErrNotAuthorized)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		s, groups, _ := newService(t)
		ctx := context.Background()

		groups.EXPECT().FindGroup(ctx, "missing").Return(nil, domain.ErrGroupNotFound)

		if err := s.UpdateSchedule(ctx, "missing", "admin-1", valid); !errors.Is(err, domain.ErrGroupNotFound) {
			t.Errorf("got %v, want %v", err, domain.ErrGroupNotFound)
		}
	})
}

func TestUpdateScheduleValidation(t *testing.T) {
	fixed := func(marks ...string) domain.ScheduleConfig {
		return domain.ScheduleConfig{Type: domain.ScheduleFixedTimes, FixedTimes: marks}
	}
	interval := func(start string, minutes int) domain.ScheduleConfig {
		return domain.ScheduleConfig{Type: domain.ScheduleInterval, IntervalStartTime: start, IntervalMinutes: minutes}
	}

	tests := []struct {
		name    string
		cfg     domain.ScheduleConfig
		wantErr bool
	}{
		{"single mark", fixed("09:00"), false},
		{"five marks", fixed("06:00", "09:00", "12:00", "18:00", "21:00"), false},
		{"midnight mark", fixed("00:00"), false},
		{"no marks", fixed(), true},
		{"six marks", fixed("01:00", "02:00", "03:00", "04:00", "05:00", "06:00"), true},
		{"mark without zero padding", fixed("9:00"), true},
		{"mark with seconds", fixed("09:00:00"), true},
		{"mark out of range", fixed("24:00"), true},
		{"garbage mark", fixed("опівдні"), true},
		{"valid interval", interval("08:00", 60), false},
		{"minimum interval", interval("08:00", 5), false},
		{"full-day interval", interval("08:00", 1440), false},
		{"interval too short", interval("08:00", 4), true},
		{"interval too long", interval("08:00", 1441), true},
		{"interval without start", interval("", 60), true},
		{"interval with bad start", interval("8am", 60), true},
		{"unknown type", domain.ScheduleConfig{Type: "WEEKLY"}, true},
		{"empty config", domain.ScheduleConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, groups, members := newService(t)
			ctx := context.Background()

			groups.EXPECT().FindGroup(ctx, "group-1").Return(&domain.Group{ID: "group-1"}, nil)
			members.EXPECT().FindMember(ctx, "group-1", "admin-1").
				Return(&domain.GroupMember{Role: domain.RoleAdmin}, nil)
			if !tt.wantErr {
				groups.EXPECT().UpdateSchedule(ctx, "group-1", tt.cfg).Return(nil)
			}

			err := s.UpdateSchedule(ctx, "group-1", "admin-1", tt.cfg)
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidSchedule) {
				t.Errorf("got %v, want %v", err, domain.ErrInvalidSchedule)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

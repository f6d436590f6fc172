// Package group manages group-level schedule settings.
package group

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

const (
	MaxFixedTimes      = 5
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 1440
)

type Service struct {
	groups  domain.GroupStore
	members domain.MemberStore
}

func NewService(groups domain.GroupStore, members domain.MemberStore) *Service {
	return &Service{groups: groups, members: members}
}

// UpdateSchedule validates and persists a group's schedule. Admin rights
// required. Stored marks are always well-formed; the lenient parsing in the
// schedule calculator only matters for rows written before validation
// existed.
func (s *Service) UpdateSchedule(ctx context.Context, groupID, requesterID string, cfg domain.ScheduleConfig) error {
	if _, err := s.groups.FindGroup(ctx, groupID); err != nil {
		return fmt.Errorf("find group: %w", err)
	}

	member, err := s.members.FindMember(ctx, groupID, requesterID)
	if err != nil {
		return fmt.Errorf("find member: %w", err)
	}
	if !member.Role.HasAdminRights() {
		return domain.ErrNotAuthorized
	}

	if err := validate(cfg); err != nil {
		return err
	}

	if err := s.groups.UpdateSchedule(ctx, groupID, cfg); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}

	slog.InfoContext(ctx, "schedule updated",
		slog.String("groupId", groupID),
		slog.String("type", cfg.Type.String()),
	)
	return nil
}

func validate(cfg domain.ScheduleConfig) error {
	switch cfg.Type {
	case domain.ScheduleFixedTimes:
		if len(cfg.FixedTimes) == 0 || len(cfg.FixedTimes) > MaxFixedTimes {
			return domain.ErrInvalidSchedule
		}
		for _, mark := range cfg.FixedTimes {
			if !validMark(mark) {
				return domain.ErrInvalidSchedule
			}
		}
		return nil
	case domain.ScheduleInterval:
		if !validMark(cfg.IntervalStartTime) {
			return domain.ErrInvalidSchedule
		}
		if cfg.IntervalMinutes < MinIntervalMinutes || cfg.IntervalMinutes > MaxIntervalMinutes {
			return domain.ErrInvalidSchedule
		}
		return nil
	default:
		return domain.ErrInvalidSchedule
	}
}

// validMark accepts zero-padded 24h "HH:mm" only.
func validMark(mark string) bool {
	if len(mark) != 5 {
		return false
	}
	_, err := time.Parse("15:04", mark)
	return err == nil
}

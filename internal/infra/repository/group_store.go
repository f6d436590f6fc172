// Package repository implements the persistence interfaces on PostgreSQL
// (via gorm) and Redis.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

type GroupStore struct {
	db *gorm.DB
}

func NewGroupStore(db *gorm.DB) *GroupStore {
	return &GroupStore{db: db}
}

func (s *GroupStore) FindGroup(ctx context.Context, id string) (*domain.Group, error) {
	var group domain.Group
	err := s.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query group: %w", err)
	}
	return &group, nil
}

func (s *GroupStore) ListScheduled(ctx context.Context) ([]domain.Group, error) {
	var groups []domain.Group
	err := s.db.WithContext(ctx).
		Where("schedule_type IN ?", []domain.ScheduleType{domain.ScheduleFixedTimes, domain.ScheduleInterval}).
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("query scheduled groups: %w", err)
	}
	return groups, nil
}

func (s *GroupStore) UpdateSchedule(ctx context.Context, groupID string, cfg domain.ScheduleConfig) error {
	// A full column map: switching variants clears the other variant's
	// columns.
	updates := map[string]interface{}{
		"schedule_type":       cfg.Type,
		"fixed_time1":         nil,
		"fixed_time2":         nil,
		"fixed_time3":         nil,
		"fixed_time4":         nil,
		"fixed_time5":         nil,
		"interval_start_time": nil,
		"interval_minutes":    nil,
	}

	switch cfg.Type {
	case domain.ScheduleFixedTimes:
		columns := []string{"fixed_time1", "fixed_time2", "fixed_time3", "fixed_time4", "fixed_time5"}
		for i, mark := range cfg.FixedTimes {
			if i >= len(columns) {
				break
			}
			updates[columns[i]] = mark
		}
	case domain.ScheduleInterval:
		updates["interval_start_time"] = cfg.IntervalStartTime
		updates["interval_minutes"] = cfg.IntervalMinutes
	}

	result := s.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ?", groupID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (s *GroupStore) ClaimUrgentSession(ctx context.Context, session domain.UrgentSession, now time.Time) (bool, error) {
	// The WHERE clause is the lock: the update only lands when the slot is
	// empty or holds an already-expired session.
	result := s.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ? AND (urgent_session_id IS NULL OR urgent_expires_at <= ?)", session.GroupID, now).
		Updates(map[string]interface{}{
			"urgent_session_id":   session.ID,
			"urgent_requested_at": session.RequestedAt,
			"urgent_expires_at":   session.ExpiresAt,
			"urgent_requested_by": session.RequestedBy,
			"urgent_message":      session.Message,
		})
	if result.Error != nil {
		return false, fmt.Errorf("claim urgent session: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GroupStore) ClearUrgentSession(ctx context.Context, groupID, sessionID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("id = ? AND urgent_session_id = ?", groupID, sessionID).
		Updates(emptyUrgentSlot())
	if result.Error != nil {
		return false, fmt.Errorf("clear urgent session: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GroupStore) SweepExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&domain.Group{}).
		Where("urgent_session_id IS NOT NULL AND urgent_expires_at <= ?", now).
		Updates(emptyUrgentSlot())
	if result.Error != nil {
		return 0, fmt.Errorf("sweep expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func emptyUrgentSlot() map[string]interface{} {
	return map[string]interface{}{
		"urgent_session_id":   nil,
		"urgent_requested_at": nil,
		"urgent_expires_at":   nil,
		"urgent_requested_by": nil,
		"urgent_message":      nil,
	}
}

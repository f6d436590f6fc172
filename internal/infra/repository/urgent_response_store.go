package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

type UrgentResponseStore struct {
	db *gorm.DB
}

func NewUrgentResponseStore(db *gorm.DB) *UrgentResponseStore {
	return &UrgentResponseStore{db: db}
}

// Insert relies on the unique (session, user) index: a concurrent
// duplicate becomes a silent no-op and the first row wins.
func (s *UrgentResponseStore) Insert(ctx context.Context, response *domain.UrgentResponse) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "urgent_session_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(response)
	if result.Error != nil {
		return false, fmt.Errorf("insert urgent response: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *UrgentResponseStore) FindBySessionAndUser(ctx context.Context, sessionID, userID string) (*domain.UrgentResponse, error) {
	var response domain.UrgentResponse
	err := s.db.WithContext(ctx).
		Where("urgent_session_id = ? AND user_id = ?", sessionID, userID).
		First(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query urgent response: %w", err)
	}
	return &response, nil
}

func (s *UrgentResponseStore) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.UrgentResponse{}).
		Where("urgent_session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count urgent responses: %w", err)
	}
	return count, nil
}

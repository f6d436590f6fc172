package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

type MemberStore struct {
	db *gorm.DB
}

func NewMemberStore(db *gorm.DB) *MemberStore {
	return &MemberStore{db: db}
}

func (s *MemberStore) AcceptedMembers(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	var members []domain.GroupMember
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ? AND state = ?", groupID, domain.MemberAccepted).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	return members, nil
}

// FindMember only matches accepted members: pending and rejected rows are
// invisible to the engine.
func (s *MemberStore) FindMember(ctx context.Context, groupID, userID string) (*domain.GroupMember, error) {
	var member domain.GroupMember
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ? AND state = ?", groupID, userID, domain.MemberAccepted).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotMember
	}
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	return &member, nil
}

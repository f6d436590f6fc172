package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) Create(ctx context.Context, report *domain.Report) error {
	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *ReportStore) LastReport(ctx context.Context, groupID, userID string) (*domain.Report, error) {
	var report domain.Report
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Order("submitted_at DESC").
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last report: %w", err)
	}
	return &report, nil
}

func (s *ReportStore) ListGroupReports(ctx context.Context, groupID string) ([]domain.Report, error) {
	var reports []domain.Report
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("submitted_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("query group reports: %w", err)
	}
	return reports, nil
}

func (s *ReportStore) ListUserReports(ctx context.Context, groupID, userID string) ([]domain.Report, error) {
	var reports []domain.Report
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Order("submitted_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("query user reports: %w", err)
	}
	return reports, nil
}

package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

// Migrate creates or updates the engine's tables. The unique indexes on
// group_members and urgent_responses are part of the concurrency model,
// not just integrity checks.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Group{},
		&domain.GroupMember{},
		&domain.Report{},
		&domain.UrgentResponse{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

package domain

import (
	"time"
)

type ReportType string

const (
	ReportSimple   ReportType = "SIMPLE"
	ReportExtended ReportType = "EXTENDED"
)

type Report struct {
	ID          string     `gorm:"primaryKey;size:36"`
	GroupID     string     `gorm:"size:36;not null;index:idx_report_group_user"`
	UserID      string     `gorm:"size:36;not null;index:idx_report_group_user"`
	ReportType  ReportType `gorm:"size:20;not null"`
	SimpleOK    *bool
	Comment     string    `gorm:"size:500"`
	Field1      string    `gorm:"size:500"`
	Field2      string    `gorm:"size:500"`
	Field3      string    `gorm:"size:500"`
	Field4      string    `gorm:"size:500"`
	Field5      string    `gorm:"size:500"`
	SubmittedAt time.Time `gorm:"not null;index"`
}

func (Report) TableName() string {
	return "reports"
}

// UrgentResponse is one member's answer to an urgent collection window.
// At most one row exists per (session, user); the unique index backs the
// first-writer-wins semantics under concurrent submissions.
type UrgentResponse struct {
	ID              string    `gorm:"primaryKey;size:36"`
	UrgentSessionID string    `gorm:"size:36;not null;index:idx_urgent_session_user,unique"`
	UserID          string    `gorm:"size:36;not null;index:idx_urgent_session_user,unique"`
	GroupID         string    `gorm:"size:36;not null;index"`
	ReportID        string    `gorm:"size:36"`
	RespondedAt     time.Time `gorm:"not null"`
}

func (UrgentResponse) TableName() string {
	return "urgent_responses"
}

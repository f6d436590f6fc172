package domain

import (
	"time"
)

// DefaultTimezone is used when a group has no timezone configured.
const DefaultTimezone = "Europe/Kyiv"

type ScheduleType string

const (
	ScheduleFixedTimes ScheduleType = "FIXED_TIMES"
	ScheduleInterval   ScheduleType = "INTERVAL"
)

func (s ScheduleType) String() string {
	return string(s)
}

// ScheduleConfig is the report schedule of a group. Exactly one variant is
// populated; a zero Type means the group has no schedule and status
// computations degrade to the neutral default.
type ScheduleConfig struct {
	Type ScheduleType

	// FIXED_TIMES: up to 5 "HH:mm" marks, order-independent.
	FixedTimes []string

	// INTERVAL: continuous cadence anchored at StartTime, 24/7.
	IntervalStartTime string
	IntervalMinutes   int
}

func (c ScheduleConfig) IsConfigured() bool {
	switch c.Type {
	case ScheduleFixedTimes:
		return len(c.FixedTimes) > 0
	case ScheduleInterval:
		return c.IntervalStartTime != "" && c.IntervalMinutes > 0
	default:
		return false
	}
}

type Group struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	Timezone  string    `gorm:"size:64"`
	CreatedBy string    `gorm:"size:36;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	ScheduleType      ScheduleType `gorm:"size:20"`
	FixedTime1        *string      `gorm:"size:5"`
	FixedTime2        *string      `gorm:"size:5"`
	FixedTime3        *string      `gorm:"size:5"`
	FixedTime4        *string      `gorm:"size:5"`
	FixedTime5        *string      `gorm:"size:5"`
	IntervalStartTime *string      `gorm:"size:5"`
	IntervalMinutes   *int

	// Urgent session slot: at most one live collection window per group.
	UrgentSessionID   *string    `gorm:"size:36"`
	UrgentRequestedAt *time.Time
	UrgentExpiresAt   *time.Time
	UrgentRequestedBy *string `gorm:"size:36"`
	UrgentMessage     *string `gorm:"size:200"`
}

func (Group) TableName() string {
	return "groups"
}

// Schedule assembles the schedule configuration from the stored columns.
// Empty mark slots are skipped.
func (g *Group) Schedule() ScheduleConfig {
	cfg := ScheduleConfig{Type: g.ScheduleType}

	if g.ScheduleType == ScheduleFixedTimes {
		for _, t := range []*string{g.FixedTime1, g.FixedTime2, g.FixedTime3, g.FixedTime4, g.FixedTime5} {
			if t != nil && *t != "" {
				cfg.FixedTimes = append(cfg.FixedTimes, *t)
			}
		}
	}

	if g.ScheduleType == ScheduleInterval {
		if g.IntervalStartTime != nil {
			cfg.IntervalStartTime = *g.IntervalStartTime
		}
		if g.IntervalMinutes != nil {
			cfg.IntervalMinutes = *g.IntervalMinutes
		}
	}

	return cfg
}

// Location resolves the group's timezone, falling back to the default zone
// and finally UTC if the zone database has neither.
func (g *Group) Location() *time.Location {
	tz := g.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, err = time.LoadLocation(DefaultTimezone)
		if err != nil {
			return time.UTC
		}
	}
	return loc
}

// UrgentSessionActive reports whether the group's urgent slot holds a live
// session at the given instant.
func (g *Group) UrgentSessionActive(now time.Time) bool {
	if g.UrgentSessionID == nil || g.UrgentExpiresAt == nil {
		return false
	}
	return now.Before(*g.UrgentExpiresAt)
}

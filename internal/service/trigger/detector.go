// Package trigger decides whether a schedule fires at a given minute.
package trigger

import (
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

// ShouldFire reports whether the schedule has a mark at now. It is
// evaluated once per minute with now truncated to whole minutes, in the
// group's timezone. Absent or invalid configurations never fire.
func ShouldFire(cfg domain.ScheduleConfig, now time.Time) bool {
	switch cfg.Type {
	case domain.ScheduleFixedTimes:
		return fixedMatch(cfg.FixedTimes, now)
	case domain.ScheduleInterval:
		return intervalMatch(cfg, now)
	default:
		return false
	}
}

// fixedMatch compares the current HH:mm against the configured marks.
// Exact string equality, so a malformed mark simply never matches.
func fixedMatch(marks []string, now time.Time) bool {
	current := now.Format("15:04")
	for _, mark := range marks {
		if mark == current {
			return true
		}
	}
	return false
}

// intervalMatch uses the same anchor rule as the calculator: today's
// start time, shifted back one day when it has not occurred yet. The
// schedule fires when a whole number of intervals has elapsed.
func intervalMatch(cfg domain.ScheduleConfig, now time.Time) bool {
	if cfg.IntervalMinutes <= 0 {
		return false
	}
	start, err := time.Parse("15:04", cfg.IntervalStartTime)
	if err != nil {
		return false
	}

	anchor := time.Date(now.Year(), now.Month(), now.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())
	if anchor.After(now) {
		anchor = anchor.AddDate(0, 0, -1)
	}

	elapsed := int(now.Sub(anchor) / time.Minute)
	return elapsed%cfg.IntervalMinutes == 0
}

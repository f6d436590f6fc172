// Package schedule derives the previous and next expected report instants
// from a group's schedule configuration.
//
// Fixed-time marks recur every calendar day; interval schedules run as a
// continuous 24/7 cadence anchored at the configured start time, not reset
// at midnight. All arithmetic happens in the timezone of the reference
// instant, so callers pass `now` already converted to the group's zone.
package schedule

import (
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

// Next returns the nearest scheduled instant strictly after now. The
// second return value is false when the configuration yields no schedule.
func Next(cfg domain.ScheduleConfig, now time.Time) (time.Time, bool) {
	switch cfg.Type {
	case domain.ScheduleFixedTimes:
		return nextFixed(cfg.FixedTimes, now)
	case domain.ScheduleInterval:
		_, next, ok := intervalBounds(cfg, now)
		return next, ok
	default:
		return time.Time{}, false
	}
}

// Previous returns the most recent scheduled instant strictly before now
// (at or before now for interval schedules, where a mark coinciding with
// now is the current cycle's start).
func Previous(cfg domain.ScheduleConfig, now time.Time) (time.Time, bool) {
	switch cfg.Type {
	case domain.ScheduleFixedTimes:
		return previousFixed(cfg.FixedTimes, now)
	case domain.ScheduleInterval:
		prev, _, ok := intervalBounds(cfg, now)
		return prev, ok
	default:
		return time.Time{}, false
	}
}

// parseMark parses an "HH:mm" mark into minutes since midnight.
func parseMark(mark string) (int, bool) {
	t, err := time.Parse("15:04", mark)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// nextFixed picks the smallest mark strictly after now among today's
// projections, or the numerically smallest mark projected onto tomorrow.
// Comparison is at minute granularity, matching the trigger detector.
// Malformed marks are skipped, they never abort the computation.
func nextFixed(marks []string, now time.Time) (time.Time, bool) {
	nowMinutes := now.Hour()*60 + now.Minute()

	best := -1
	smallest := -1
	for _, mark := range marks {
		m, ok := parseMark(mark)
		if !ok {
			continue
		}
		if smallest < 0 || m < smallest {
			smallest = m
		}
		if m > nowMinutes && (best < 0 || m < best) {
			best = m
		}
	}

	if best >= 0 {
		return atMinuteOfDay(now, best), true
	}
	if smallest >= 0 {
		return atMinuteOfDay(now.AddDate(0, 0, 1), smallest), true
	}
	return time.Time{}, false
}

// previousFixed picks the largest mark strictly before now among today's
// projections, or the numerically largest mark projected onto yesterday.
func previousFixed(marks []string, now time.Time) (time.Time, bool) {
	nowMinutes := now.Hour()*60 + now.Minute()

	best := -1
	largest := -1
	for _, mark := range marks {
		m, ok := parseMark(mark)
		if !ok {
			continue
		}
		if m > largest {
			largest = m
		}
		if m < nowMinutes && m > best {
			best = m
		}
	}

	if best >= 0 {
		return atMinuteOfDay(now, best), true
	}
	if largest >= 0 {
		return atMinuteOfDay(now.AddDate(0, 0, -1), largest), true
	}
	return time.Time{}, false
}

// intervalBounds computes the enclosing cycle of an interval schedule:
// previous <= now < next and next-previous == interval.
func intervalBounds(cfg domain.ScheduleConfig, now time.Time) (time.Time, time.Time, bool) {
	if cfg.IntervalMinutes <= 0 {
		return time.Time{}, time.Time{}, false
	}
	startMinutes, ok := parseMark(cfg.IntervalStartTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	anchor := atMinuteOfDay(now, startMinutes)
	if anchor.After(now) {
		anchor = anchor.AddDate(0, 0, -1)
	}

	interval := time.Duration(cfg.IntervalMinutes) * time.Minute
	elapsed := now.Sub(anchor)
	cycles := elapsed / interval

	previous := anchor.Add(cycles * interval)
	next := anchor.Add((cycles + 1) * interval)
	return previous, next, true
}

func atMinuteOfDay(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

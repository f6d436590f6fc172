// Package status classifies a member's compliance into a discrete
// color/percentage band.
package status

import (
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

// Classify maps a member's last report against the enclosing schedule
// cycle. The report itself is judged relative to the next boundary (early
// submission vs. leftover from a past cycle); when it falls inside the
// tolerance window the live band is driven by how far now has progressed
// toward the deadline. All comparisons are strict: an instant landing
// exactly on a threshold takes the milder band. The band constants are
// client-visible and must not drift.
func Classify(role domain.Role, lastReportAt, previous, next *time.Time, now time.Time) domain.StatusBand {
	if role == domain.RoleAdmin {
		return domain.NewStatusBand(domain.ColorDarkGreen, domain.PercentageEarly)
	}

	if lastReportAt == nil || previous == nil || next == nil {
		return domain.StatusBand{Color: domain.ColorDefaultGrey}
	}

	period := next.Sub(*previous)
	quarter := period / 4
	half := period / 2

	switch {
	case lastReportAt.After(next.Add(-quarter)):
		// Submitted early, toward the upcoming cycle.
		return domain.NewStatusBand(domain.ColorLightGreen, domain.PercentageEarly)
	case lastReportAt.Before(previous.Add(-quarter)):
		// Leftover from a long-past cycle.
		return domain.NewStatusBand(domain.ColorLightRed, domain.PercentageStale)
	}

	switch {
	case now.After(next.Add(-quarter)):
		return domain.NewStatusBand(domain.ColorLightRed, domain.PercentageCritical)
	case now.After(next.Add(-half)):
		return domain.NewStatusBand(domain.ColorLightYellow, domain.PercentageWarning)
	default:
		return domain.NewStatusBand(domain.ColorLightGreen, domain.PercentageNormal)
	}
}

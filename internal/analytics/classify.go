package analytics

import "github.com/theirongolddev/fittrack/internal/model"

// Percentage returns actual/goal as a percentage. A zero goal yields 0, not
// a division error.
func Percentage(actual, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return actual / goal * 100
}

// ClassifyCompletion maps a completion percentage onto the four-tier
// progress ladder.
func ClassifyCompletion(pct float64) model.Tier {
	switch {
	case pct >= 90:
		return model.TierBest
	case pct >= 70:
		return model.TierGood
	case pct >= 50:
		return model.TierFair
	default:
		return model.TierLow
	}
}

// ClassifyStreakDay maps a day onto the coarser streak ladder. A day with
// nothing logged at all is StreakNone — semantically different from a day
// the user logged but came in under threshold.
func ClassifyStreakDay(d model.DailyTotals, pct float64) model.StreakTier {
	if !d.HasData() {
		return model.StreakNone
	}
	switch {
	case pct >= 80:
		return model.StreakHigh
	case pct >= 50:
		return model.StreakMid
	default:
		return model.StreakLow
	}
}

package analytics

import (
	"testing"

	"github.com/theirongolddev/fittrack/internal/model"
)

func TestPercentageZeroGoal(t *testing.T) {
	if got := Percentage(1800, 0); got != 0 {
		t.Fatalf("Percentage with zero goal = %v, want 0", got)
	}
	if got := Percentage(1800, 2000); got != 90 {
		t.Fatalf("Percentage(1800, 2000) = %v, want 90", got)
	}
}

func TestClassifyCompletionLadder(t *testing.T) {
	cases := []struct {
		pct  float64
		want model.Tier
	}{
		{100, model.TierBest},
		{90, model.TierBest}, // boundary is inclusive
		{89.9, model.TierGood},
		{70, model.TierGood},
		{69.9, model.TierFair},
		{50, model.TierFair},
		{49.9, model.TierLow},
		{0, model.TierLow},
	}
	for _, tc := range cases {
		if got := ClassifyCompletion(tc.pct); got != tc.want {
			t.Errorf("ClassifyCompletion(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestClassifyStreakDayLadder(t *testing.T) {
	logged := model.DailyTotals{Meals: 1}
	cases := []struct {
		pct  float64
		want model.StreakTier
	}{
		{100, model.StreakHigh},
		{80, model.StreakHigh},
		{79.9, model.StreakMid},
		{50, model.StreakMid},
		{49.9, model.StreakLow},
		{0, model.StreakLow},
	}
	for _, tc := range cases {
		if got := ClassifyStreakDay(logged, tc.pct); got != tc.want {
			t.Errorf("ClassifyStreakDay(logged, %v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestStreakNoDataDistinctFromBelowThreshold(t *testing.T) {
	empty := model.DailyTotals{}
	if got := ClassifyStreakDay(empty, 0); got != model.StreakNone {
		t.Fatalf("empty day = %v, want StreakNone", got)
	}

	// A day with a logged meal but 0% completion is below-threshold, not
	// no-data.
	logged := model.DailyTotals{Meals: 1}
	if got := ClassifyStreakDay(logged, 0); got != model.StreakLow {
		t.Fatalf("logged-but-low day = %v, want StreakLow", got)
	}

	// Workout-only days still count as having data.
	trained := model.DailyTotals{Workouts: 1}
	if got := ClassifyStreakDay(trained, 0); got != model.StreakLow {
		t.Fatalf("workout-only day = %v, want StreakLow", got)
	}
}

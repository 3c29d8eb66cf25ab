package analytics

import (
	"errors"
	"testing"

	"github.com/theirongolddev/fittrack/internal/model"
	"github.com/theirongolddev/fittrack/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func logMealNamed(t *testing.T, s *store.Store, name, date string, kcal, protein float64) {
	t.Helper()
	id, err := s.CreateMealTemplate(model.MealTemplate{Name: name, Calories: kcal, Protein: protein})
	if err != nil {
		t.Fatalf("CreateMealTemplate: %v", err)
	}
	if _, err := s.LogMeal(id, date); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
}

func TestDailyTotalsSumsMeals(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	logMealNamed(t, s, "Breakfast", "2025-01-06", 400, 20)
	logMealNamed(t, s, "Lunch", "2025-01-06", 800, 40)
	logMealNamed(t, s, "Other day", "2025-01-07", 600, 30)

	d := e.DailyTotals("2025-01-06")
	if d.Calories != 1200 {
		t.Errorf("Calories = %.0f, want 1200", d.Calories)
	}
	if d.Protein != 60 {
		t.Errorf("Protein = %.0f, want 60", d.Protein)
	}
	if d.Meals != 2 {
		t.Errorf("Meals = %d, want 2", d.Meals)
	}
}

func TestDailyTotalsEmptyDayIsZero(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	d := e.DailyTotals("2025-01-06")
	if d.Date != "2025-01-06" {
		t.Errorf("Date = %q, want 2025-01-06", d.Date)
	}
	if d.Calories != 0 || d.Meals != 0 || d.Workouts != 0 {
		t.Errorf("empty day totals = %+v, want all-zero", d)
	}
	if d.HasData() {
		t.Error("empty day reports HasData")
	}
}

func TestWeeklyBreakdownAlwaysSevenDays(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	// No logs at all: still exactly 7 zero-filled slots in day order.
	breakdown := e.WeeklyBreakdown("2025-01-06")
	if len(breakdown) != 7 {
		t.Fatalf("breakdown length = %d, want 7", len(breakdown))
	}

	wantDays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	wantDates := []string{
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09",
		"2025-01-10", "2025-01-11", "2025-01-12",
	}
	for i, d := range breakdown {
		if d.Day != wantDays[i] {
			t.Errorf("breakdown[%d].Day = %q, want %q", i, d.Day, wantDays[i])
		}
		if d.Date != wantDates[i] {
			t.Errorf("breakdown[%d].Date = %q, want %q", i, d.Date, wantDates[i])
		}
		if d.Calories != 0 {
			t.Errorf("breakdown[%d].Calories = %.0f, want 0", i, d.Calories)
		}
	}
}

func TestWeeklyBreakdownPositional(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	logMealNamed(t, s, "Wed meal", "2025-01-08", 500, 25)

	breakdown := e.WeeklyBreakdown("2025-01-06")
	if breakdown[2].Calories != 500 {
		t.Errorf("Wednesday slot = %.0f kcal, want 500", breakdown[2].Calories)
	}
	for i, d := range breakdown {
		if i != 2 && d.Calories != 0 {
			t.Errorf("slot %d = %.0f kcal, want 0", i, d.Calories)
		}
	}
}

func TestWeeklyTotalsWindowIsInclusive(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	logMealNamed(t, s, "First day", "2025-01-06", 300, 0)
	logMealNamed(t, s, "Last day", "2025-01-12", 200, 0)
	logMealNamed(t, s, "Next week", "2025-01-13", 999, 0)

	totals := e.WeeklyTotals("2025-01-06")
	if totals.Calories != 500 {
		t.Errorf("weekly calories = %.0f, want 500", totals.Calories)
	}
	if totals.Meals != 2 {
		t.Errorf("weekly meals = %d, want 2", totals.Meals)
	}
}

func TestStreakCountIsPresenceNotAchievement(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	// Tiny meals still count toward the streak.
	logMealNamed(t, s, "Snack A", "2025-01-06", 50, 0)
	logMealNamed(t, s, "Snack B", "2025-01-08", 50, 0)
	logMealNamed(t, s, "Snack C", "2025-01-10", 50, 0)

	if got := e.StreakCount("2025-01-06", model.MetricCalories); got != 3 {
		t.Errorf("StreakCount = %d, want 3", got)
	}

	// The workouts metric ignores meals entirely.
	if got := e.StreakCount("2025-01-06", model.MetricWorkouts); got != 0 {
		t.Errorf("StreakCount(workouts) = %d, want 0", got)
	}
}

func TestStreakTiersMarkNoDataDays(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	if err := s.SetGoal("2025-01-01", model.Goal{Calories: 2000}); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	logMealNamed(t, s, "Full day", "2025-01-06", 1800, 0)
	logMealNamed(t, s, "Light day", "2025-01-07", 300, 0)

	tiers := e.StreakTiers("2025-01-06", model.MetricCalories)
	if len(tiers) != 7 {
		t.Fatalf("tiers length = %d, want 7", len(tiers))
	}
	if tiers[0] != model.StreakHigh {
		t.Errorf("Monday tier = %v, want StreakHigh", tiers[0])
	}
	if tiers[1] != model.StreakLow {
		t.Errorf("Tuesday tier = %v, want StreakLow (logged but under)", tiers[1])
	}
	if tiers[2] != model.StreakNone {
		t.Errorf("Wednesday tier = %v, want StreakNone (nothing logged)", tiers[2])
	}
}

func TestEndToEndCompletion(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	if err := s.SetGoal("2025-01-01", model.Goal{Calories: 2000}); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	logMealNamed(t, s, "Breakfast", "2025-01-06", 600, 0)
	logMealNamed(t, s, "Lunch", "2025-01-06", 700, 0)
	logMealNamed(t, s, "Dinner", "2025-01-06", 500, 0)

	d := e.DailyTotals("2025-01-06")
	if d.Calories != 1800 {
		t.Fatalf("calories = %.0f, want 1800", d.Calories)
	}
	g := s.ResolveGoal("2025-01-06")
	if g.Calories != 2000 {
		t.Fatalf("resolved goal = %.0f, want 2000", g.Calories)
	}

	pct := Percentage(d.Calories, g.Calories)
	if pct != 90 {
		t.Fatalf("percentage = %v, want 90", pct)
	}
	if tier := ClassifyCompletion(pct); tier != model.TierBest {
		t.Fatalf("tier = %v, want TierBest", tier)
	}
	if tier := e.CompletionTier("2025-01-06", model.MetricCalories); tier != model.TierBest {
		t.Fatalf("CompletionTier = %v, want TierBest", tier)
	}
}

func TestCompletionTierPresenceMetrics(t *testing.T) {
	s := openStore(t)
	e := New(s, s)

	// The calorie goal must not leak into count metrics.
	if err := s.SetGoal("2025-01-01", model.Goal{Calories: 2000}); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}

	w, err := s.WorkoutTemplateByName("Full body")
	if err != nil {
		t.Fatalf("WorkoutTemplateByName: %v", err)
	}
	if _, err := s.LogWorkout(w.ID, "2025-01-06"); err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	if tier := e.CompletionTier("2025-01-06", model.MetricWorkouts); tier != model.TierBest {
		t.Errorf("workouts tier with activity = %v, want TierBest", tier)
	}
	if tier := e.CompletionTier("2025-01-07", model.MetricWorkouts); tier != model.TierLow {
		t.Errorf("workouts tier without activity = %v, want TierLow", tier)
	}
	if tier := e.CompletionTier("2025-01-06", model.MetricExercises); tier != model.TierLow {
		t.Errorf("exercises tier with no sets = %v, want TierLow", tier)
	}
}

// failingReader simulates a store whose every query fails.
type failingReader struct{}

func (failingReader) MealLogsBetween(_, _ string) ([]model.MealLog, error) {
	return nil, errors.New("disk gone")
}

func (failingReader) WorkoutLogsBetween(_, _ string) ([]model.WorkoutLog, error) {
	return nil, errors.New("disk gone")
}

func (failingReader) SetCountsBetween(_, _ string) (map[string]int, error) {
	return nil, errors.New("disk gone")
}

type defaultGoals struct{}

func (defaultGoals) ResolveGoal(string) model.Goal { return model.DefaultGoal() }

func TestReadsDegradeToZeroOnStoreError(t *testing.T) {
	e := New(failingReader{}, defaultGoals{})

	d := e.DailyTotals("2025-01-06")
	if d.Calories != 0 || d.Meals != 0 {
		t.Errorf("degraded daily totals = %+v, want zeros", d)
	}

	breakdown := e.WeeklyBreakdown("2025-01-06")
	if len(breakdown) != 7 {
		t.Fatalf("degraded breakdown length = %d, want 7", len(breakdown))
	}
	for i, day := range breakdown {
		if day.Calories != 0 || day.HasData() {
			t.Errorf("degraded slot %d = %+v, want zero", i, day)
		}
	}

	if got := e.StreakCount("2025-01-06", model.MetricCalories); got != 0 {
		t.Errorf("degraded streak = %d, want 0", got)
	}
}

// Package analytics rolls raw log rows into daily and weekly totals,
// 7-day breakdowns, and streak/completion classifications.
package analytics

import (
	"github.com/theirongolddev/fittrack/internal/model"
)

// Reader is the slice of the store the engine reads from.
type Reader interface {
	MealLogsBetween(start, end string) ([]model.MealLog, error)
	WorkoutLogsBetween(start, end string) ([]model.WorkoutLog, error)
	SetCountsBetween(start, end string) (map[string]int, error)
}

// GoalSource resolves the goal effective on a date. Resolution never fails.
type GoalSource interface {
	ResolveGoal(date string) model.Goal
}

// Engine computes user-facing numbers from the store. Every read degrades to
// the zero value of its shape on storage error, so a transient fault never
// breaks a screen.
type Engine struct {
	store Reader
	goals GoalSource
}

// New builds an engine over an opened store.
func New(store Reader, goals GoalSource) *Engine {
	return &Engine{store: store, goals: goals}
}

// DailyTotals sums every metric logged on date. Missing data yields all-zero
// totals with only Date set.
func (e *Engine) DailyTotals(date string) model.DailyTotals {
	days := e.loadDays(date, date, 1)
	return days[0]
}

// WeeklyTotals sums the inclusive 7-day window starting at weekStart.
func (e *Engine) WeeklyTotals(weekStart string) model.WeeklyTotals {
	totals := model.WeeklyTotals{WeekStart: weekStart}
	for _, d := range e.WeeklyBreakdown(weekStart) {
		totals.Calories += d.Calories
		totals.Protein += d.Protein
		totals.Carbs += d.Carbs
		totals.Fats += d.Fats
		totals.Meals += d.Meals
		totals.Workouts += d.Workouts
		totals.Sets += d.Sets
	}
	return totals
}

// WeeklyBreakdown returns exactly 7 day records in day order from weekStart,
// zero-filled where nothing was logged. Callers index positionally.
func (e *Engine) WeeklyBreakdown(weekStart string) []model.DayTotals {
	days := e.loadDays(weekStart, endOfWindow(weekStart, 7), 7)

	breakdown := make([]model.DayTotals, len(days))
	start, err := model.ParseDate(weekStart)
	for i, d := range days {
		breakdown[i].DailyTotals = d
		if err == nil {
			breakdown[i].Day = DayName(start.AddDate(0, 0, i))
		}
	}
	return breakdown
}

// StreakCount counts days in the 7-day window from weekStart with any
// activity on the given metric. Presence, not goal achievement: strictly
// greater than zero counts.
func (e *Engine) StreakCount(weekStart string, metric model.Metric) int {
	count := 0
	for _, d := range e.WeeklyBreakdown(weekStart) {
		if d.MetricValue(metric) > 0 {
			count++
		}
	}
	return count
}

// StreakTiers classifies each day of the window for streak coloring,
// measured against the daily goal for the chosen metric.
func (e *Engine) StreakTiers(weekStart string, metric model.Metric) []model.StreakTier {
	breakdown := e.WeeklyBreakdown(weekStart)
	tiers := make([]model.StreakTier, len(breakdown))
	for i, d := range breakdown {
		goal := goalFor(e.goals.ResolveGoal(d.Date), d.DailyTotals, metric)
		tiers[i] = ClassifyStreakDay(d.DailyTotals, Percentage(d.MetricValue(metric), goal))
	}
	return tiers
}

// CompletionTier classifies a day's totals against its resolved goal for the
// given metric.
func (e *Engine) CompletionTier(date string, metric model.Metric) model.Tier {
	d := e.DailyTotals(date)
	goal := goalFor(e.goals.ResolveGoal(date), d, metric)
	return ClassifyCompletion(Percentage(d.MetricValue(metric), goal))
}

// goalFor picks the stored target for a metric. Presence metrics (workouts,
// exercises) have no stored target; the day's own value is the target, so
// any activity is a full hit and none is 0%.
func goalFor(g model.Goal, d model.DailyTotals, metric model.Metric) float64 {
	switch metric {
	case model.MetricProtein:
		return g.Protein
	case model.MetricCarbs:
		return g.Carbs
	case model.MetricFats:
		return g.Fats
	case model.MetricWorkouts, model.MetricExercises:
		return d.MetricValue(metric)
	default:
		return g.Calories
	}
}

// loadDays builds n consecutive zero-filled day slots from start and folds
// the window's log rows into them. Any store error leaves the slots zeroed.
func (e *Engine) loadDays(start, end string, n int) []model.DailyTotals {
	days := make([]model.DailyTotals, n)
	startDay, err := model.ParseDate(start)
	if err != nil {
		return days
	}
	idx := make(map[string]int, n)
	for i := range days {
		date := model.DateOf(startDay.AddDate(0, 0, i))
		days[i].Date = date
		idx[date] = i
	}

	meals, err := e.store.MealLogsBetween(start, end)
	if err == nil {
		for _, l := range meals {
			i, ok := idx[l.Date]
			if !ok {
				continue
			}
			days[i].Calories += l.Calories
			days[i].Protein += l.Protein
			days[i].Carbs += l.Carbs
			days[i].Fats += l.Fats
			days[i].Meals++
		}
	}

	workouts, err := e.store.WorkoutLogsBetween(start, end)
	if err == nil {
		for _, l := range workouts {
			if i, ok := idx[l.Date]; ok {
				days[i].Workouts++
			}
		}
	}

	setCounts, err := e.store.SetCountsBetween(start, end)
	if err == nil {
		for date, count := range setCounts {
			if i, ok := idx[date]; ok {
				days[i].Sets += count
			}
		}
	}

	return days
}

// endOfWindow returns the last date of an n-day window starting at start.
// A malformed start degrades to itself; downstream reads then zero-fill.
func endOfWindow(start string, n int) string {
	t, err := model.ParseDate(start)
	if err != nil {
		return start
	}
	return model.DateOf(t.AddDate(0, 0, n-1))
}

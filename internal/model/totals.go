package model

// DailyTotals holds the summed metrics for one calendar day. Missing data
// yields the zero value with only Date set, never an error.
type DailyTotals struct {
	Date     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Meals    int
	Workouts int
	Sets     int
}

// HasData reports whether anything at all was logged on the day. A day with
// zero activity is classified differently from a day that was logged but fell
// below threshold.
func (d DailyTotals) HasData() bool {
	return d.Meals > 0 || d.Workouts > 0 || d.Sets > 0
}

// DayTotals is one slot of a 7-day breakdown: a day's totals tagged with its
// short day name ("Mon".."Sun").
type DayTotals struct {
	DailyTotals
	Day string
}

// WeeklyTotals holds sums across the inclusive 7-day window starting at
// WeekStart.
type WeeklyTotals struct {
	WeekStart string
	Calories  float64
	Protein   float64
	Carbs     float64
	Fats      float64
	Meals     int
	Workouts  int
	Sets      int
}

// Metric names a trackable quantity that can drive streak counting.
type Metric string

const (
	MetricCalories  Metric = "calories"
	MetricProtein   Metric = "protein"
	MetricCarbs     Metric = "carbs"
	MetricFats      Metric = "fats"
	MetricWorkouts  Metric = "workouts"
	MetricExercises Metric = "exercises"
)

// ValidMetric reports whether m names a known streak metric.
func ValidMetric(m Metric) bool {
	switch m {
	case MetricCalories, MetricProtein, MetricCarbs, MetricFats, MetricWorkouts, MetricExercises:
		return true
	}
	return false
}

// MetricValue extracts the named metric from a day's totals.
func (d DailyTotals) MetricValue(m Metric) float64 {
	switch m {
	case MetricProtein:
		return d.Protein
	case MetricCarbs:
		return d.Carbs
	case MetricFats:
		return d.Fats
	case MetricWorkouts:
		return float64(d.Workouts)
	case MetricExercises:
		return float64(d.Sets)
	default:
		return d.Calories
	}
}

// Tier is the four-step completion ladder used for progress coloring.
type Tier int

const (
	TierLow Tier = iota
	TierFair
	TierGood
	TierBest
)

// StreakTier is the coarser ladder used for streak coloring. StreakNone
// marks a day with no logged activity at all, which is distinct from a day
// logged below threshold.
type StreakTier int

const (
	StreakNone StreakTier = iota
	StreakLow
	StreakMid
	StreakHigh
)

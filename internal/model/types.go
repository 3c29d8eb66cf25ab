// Package model defines the domain types shared by the store, the
// analytics engine, and the CLI.
package model

// MealTemplate is a reusable meal definition. Logging a meal snapshots the
// template's macros into the log row, so editing a template never rewrites
// history.
type MealTemplate struct {
	ID       int64
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Favorite bool
}

// MealLog records one meal eaten on a calendar date.
type MealLog struct {
	ID         int64
	TemplateID int64
	Date       string
	Calories   float64
	Protein    float64
	Carbs      float64
	Fats       float64
}

// Exercise is one movement within a workout template.
type Exercise struct {
	ID         int64
	WorkoutID  int64
	Name       string
	TargetSets int
	TargetReps int
	Position   int
}

// WorkoutTemplate is a reusable workout definition with its exercises in
// position order.
type WorkoutTemplate struct {
	ID        int64
	Name      string
	Favorite  bool
	Exercises []Exercise
}

// WorkoutLog records one execution of a workout template on a calendar date.
type WorkoutLog struct {
	ID        int64
	WorkoutID int64
	Date      string
}

// SetLog records a single performed set within a workout log.
type SetLog struct {
	ID           int64
	WorkoutLogID int64
	ExerciseID   int64
	SetNumber    int
	Reps         int
	Weight       float64
}

// Preference is a named toggle gating which derived stats are surfaced.
type Preference struct {
	StatName     string
	Enabled      bool
	DisplayOrder int
}

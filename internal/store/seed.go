package store

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/model"
)

// Seeded defaults. Seeding is natural-key guarded: re-running never
// duplicates rows and never overwrites a user's edits to a seeded row.
var defaultPreferences = []model.Preference{
	{StatName: "calories", Enabled: true, DisplayOrder: 0},
	{StatName: "protein", Enabled: true, DisplayOrder: 1},
	{StatName: "carbs", Enabled: true, DisplayOrder: 2},
	{StatName: "fats", Enabled: true, DisplayOrder: 3},
	{StatName: "workouts", Enabled: true, DisplayOrder: 4},
	{StatName: "streak", Enabled: true, DisplayOrder: 5},
}

var defaultSettings = map[string]string{
	"streak_metric": string(model.MetricCalories),
	"week_start":    "monday",
}

var starterMeals = []model.MealTemplate{
	{Name: "Oatmeal with banana", Calories: 350, Protein: 10, Carbs: 65, Fats: 6},
	{Name: "Chicken and rice", Calories: 550, Protein: 45, Carbs: 60, Fats: 12},
	{Name: "Greek yogurt", Calories: 150, Protein: 15, Carbs: 12, Fats: 4},
}

var starterWorkout = model.WorkoutTemplate{
	Name: "Full body",
	Exercises: []model.Exercise{
		{Name: "Squat", TargetSets: 3, TargetReps: 8, Position: 0},
		{Name: "Bench press", TargetSets: 3, TargetReps: 8, Position: 1},
		{Name: "Row", TargetSets: 3, TargetReps: 10, Position: 2},
	},
}

func (s *Store) seed() error {
	for _, p := range defaultPreferences {
		enabled := 0
		if p.Enabled {
			enabled = 1
		}
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO preferences (stat_name, is_enabled, display_order) VALUES (?, ?, ?)",
			p.StatName, enabled, p.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("seeding preference %q: %w", p.StatName, err)
		}
	}

	for key, value := range defaultSettings {
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO settings (setting_key, setting_value) VALUES (?, ?)",
			key, value,
		)
		if err != nil {
			return fmt.Errorf("seeding setting %q: %w", key, err)
		}
	}

	if err := s.seedTemplates(); err != nil {
		return fmt.Errorf("seeding templates: %w", err)
	}
	return nil
}

// seedTemplates inserts starter templates whose name is not already present.
// Templates have no unique name constraint (users may create duplicates), so
// the guard is an explicit existence query rather than INSERT OR IGNORE.
func (s *Store) seedTemplates() error {
	for _, m := range starterMeals {
		var n int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM meal_templates WHERE name = ?", m.Name).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if _, err := s.CreateMealTemplate(m); err != nil {
			return err
		}
	}

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM workout_templates WHERE name = ?", starterWorkout.Name).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		if _, err := s.CreateWorkoutTemplate(starterWorkout); err != nil {
			return err
		}
	}
	return nil
}

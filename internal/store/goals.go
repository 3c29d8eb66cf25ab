package store

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/model"
)

// epochSentinel filters out the epoch placeholder date some historical rows
// carry; such rows must never win goal resolution.
const epochSentinel = "1970-01-01"

// SetGoal stores a goal effective from date onward. Any future-dated rows
// are purged first: a goal set now applies from today forward, so a
// previously scheduled change would otherwise take precedence incorrectly.
// Both happen in one transaction.
func (s *Store) SetGoal(date string, g model.Goal) error {
	if !model.ValidDate(date) {
		return fmt.Errorf("invalid goal date %q", date)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM goals WHERE goal_date > ?", date); err != nil {
		return fmt.Errorf("purging future goals: %w", err)
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO goals
		(goal_date, calorie_goal, protein_goal, carb_goal, fat_goal, weight_goal)
		VALUES (?, ?, ?, ?, ?, ?)`,
		date, g.Calories, g.Protein, g.Carbs, g.Fats, g.Weight,
	)
	if err != nil {
		return fmt.Errorf("writing goal: %w", err)
	}

	return tx.Commit()
}

// ResolveGoal returns the goal effective on date: the row with the largest
// goal_date at or before it. Resolution never fails — a missing or
// unreadable goal falls back to the hard-coded default so logging is never
// blocked.
func (s *Store) ResolveGoal(date string) model.Goal {
	var g model.Goal
	err := s.db.QueryRow(`SELECT goal_date, calorie_goal, protein_goal, carb_goal, fat_goal, weight_goal
		FROM goals
		WHERE goal_date <= ? AND goal_date > ?
		ORDER BY goal_date DESC
		LIMIT 1`, date, epochSentinel,
	).Scan(&g.Date, &g.Calories, &g.Protein, &g.Carbs, &g.Fats, &g.Weight)
	if err != nil {
		return model.DefaultGoal()
	}
	return g
}

// ResolveWeeklyGoal scales the daily goal for any date in the week by 7.
// This assumes the goal is constant across the week; a mid-week goal change
// shows the new daily goal ×7 rather than the true mixed total. The weight
// goal is a point target, not additive, and is left unscaled.
func (s *Store) ResolveWeeklyGoal(anyDateInWeek string) model.Goal {
	g := s.ResolveGoal(anyDateInWeek)
	g.Calories *= 7
	g.Protein *= 7
	g.Carbs *= 7
	g.Fats *= 7
	return g
}

package store

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/model"
)

// LogMeal records a meal eaten on date, snapshotting the template's current
// macros into the log row.
func (s *Store) LogMeal(templateID int64, date string) (int64, error) {
	if !model.ValidDate(date) {
		return 0, fmt.Errorf("invalid log date %q", date)
	}

	var cal, protein, carbs, fats float64
	err := s.db.QueryRow("SELECT calories, protein, carbs, fats FROM meal_templates WHERE id = ?", templateID).
		Scan(&cal, &protein, &carbs, &fats)
	if err != nil {
		return 0, fmt.Errorf("meal template %d: %w", templateID, err)
	}

	res, err := s.db.Exec(`INSERT INTO meal_logs (template_id, log_date, calories, protein, carbs, fats)
		VALUES (?, ?, ?, ?, ?, ?)`,
		templateID, date, cal, protein, carbs, fats,
	)
	if err != nil {
		return 0, fmt.Errorf("logging meal: %w", err)
	}
	return res.LastInsertId()
}

// UpdateMealLog overwrites a log row's macros, for portion adjustments after
// the fact.
func (s *Store) UpdateMealLog(l model.MealLog) error {
	_, err := s.db.Exec(`UPDATE meal_logs SET calories = ?, protein = ?, carbs = ?, fats = ? WHERE id = ?`,
		l.Calories, l.Protein, l.Carbs, l.Fats, l.ID)
	if err != nil {
		return fmt.Errorf("updating meal log %d: %w", l.ID, err)
	}
	return nil
}

// DeleteMealLog removes a single meal log row.
func (s *Store) DeleteMealLog(id int64) error {
	_, err := s.db.Exec("DELETE FROM meal_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting meal log %d: %w", id, err)
	}
	return nil
}

// MealLogsByDate lists the meals logged on one calendar date.
func (s *Store) MealLogsByDate(date string) ([]model.MealLog, error) {
	return s.MealLogsBetween(date, date)
}

// MealLogsBetween lists meals logged in the inclusive date window.
func (s *Store) MealLogsBetween(start, end string) ([]model.MealLog, error) {
	rows, err := s.db.Query(`SELECT id, template_id, log_date, calories, protein, carbs, fats
		FROM meal_logs
		WHERE log_date BETWEEN ? AND ?
		ORDER BY log_date, id`, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var logs []model.MealLog
	for rows.Next() {
		var l model.MealLog
		if err := rows.Scan(&l.ID, &l.TemplateID, &l.Date, &l.Calories, &l.Protein, &l.Carbs, &l.Fats); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// LogWorkout records an execution of a workout template on date.
func (s *Store) LogWorkout(workoutID int64, date string) (int64, error) {
	if !model.ValidDate(date) {
		return 0, fmt.Errorf("invalid log date %q", date)
	}
	res, err := s.db.Exec("INSERT INTO workout_logs (workout_id, log_date) VALUES (?, ?)", workoutID, date)
	if err != nil {
		return 0, fmt.Errorf("logging workout: %w", err)
	}
	return res.LastInsertId()
}

// DeleteWorkoutLog removes a workout log row; its set logs cascade.
func (s *Store) DeleteWorkoutLog(id int64) error {
	_, err := s.db.Exec("DELETE FROM workout_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting workout log %d: %w", id, err)
	}
	return nil
}

// LogSet records one performed set within a workout log.
func (s *Store) LogSet(l model.SetLog) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO set_logs (workout_log_id, exercise_id, set_number, reps, weight)
		VALUES (?, ?, ?, ?, ?)`,
		l.WorkoutLogID, l.ExerciseID, l.SetNumber, l.Reps, l.Weight,
	)
	if err != nil {
		return 0, fmt.Errorf("logging set: %w", err)
	}
	return res.LastInsertId()
}

// DeleteSetLog removes a single set log row.
func (s *Store) DeleteSetLog(id int64) error {
	_, err := s.db.Exec("DELETE FROM set_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting set log %d: %w", id, err)
	}
	return nil
}

// WorkoutLogsBetween lists workout executions in the inclusive date window.
func (s *Store) WorkoutLogsBetween(start, end string) ([]model.WorkoutLog, error) {
	rows, err := s.db.Query(`SELECT id, workout_id, log_date
		FROM workout_logs
		WHERE log_date BETWEEN ? AND ?
		ORDER BY log_date, id`, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var logs []model.WorkoutLog
	for rows.Next() {
		var l model.WorkoutLog
		if err := rows.Scan(&l.ID, &l.WorkoutID, &l.Date); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// SetsByWorkoutLog lists the sets recorded under one workout log.
func (s *Store) SetsByWorkoutLog(workoutLogID int64) ([]model.SetLog, error) {
	rows, err := s.db.Query(`SELECT id, workout_log_id, exercise_id, set_number, reps, weight
		FROM set_logs WHERE workout_log_id = ? ORDER BY exercise_id, set_number`, workoutLogID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sets []model.SetLog
	for rows.Next() {
		var l model.SetLog
		if err := rows.Scan(&l.ID, &l.WorkoutLogID, &l.ExerciseID, &l.SetNumber, &l.Reps, &l.Weight); err != nil {
			return nil, err
		}
		sets = append(sets, l)
	}
	return sets, rows.Err()
}

// SetCountsBetween returns, per date, how many sets were logged in the
// inclusive window. Dates with no sets are absent from the map.
func (s *Store) SetCountsBetween(start, end string) (map[string]int, error) {
	rows, err := s.db.Query(`SELECT w.log_date, COUNT(*)
		FROM set_logs sl
		JOIN workout_logs w ON w.id = sl.workout_log_id
		WHERE w.log_date BETWEEN ? AND ?
		GROUP BY w.log_date`, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var n int
		if err := rows.Scan(&date, &n); err != nil {
			return nil, err
		}
		counts[date] = n
	}
	return counts, rows.Err()
}

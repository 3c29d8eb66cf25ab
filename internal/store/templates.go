package store

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/model"
)

// CreateMealTemplate inserts a meal template and returns its assigned id.
func (s *Store) CreateMealTemplate(m model.MealTemplate) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO meal_templates (name, calories, protein, carbs, fats, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, m.Calories, m.Protein, m.Carbs, m.Fats, boolInt(m.Favorite),
	)
	if err != nil {
		return 0, fmt.Errorf("creating meal template: %w", err)
	}
	return res.LastInsertId()
}

// UpdateMealTemplate edits a template in place. Existing log rows keep the
// macros they snapshotted at log time.
func (s *Store) UpdateMealTemplate(m model.MealTemplate) error {
	_, err := s.db.Exec(`UPDATE meal_templates SET name = ?, calories = ?, protein = ?, carbs = ?, fats = ?
		WHERE id = ?`,
		m.Name, m.Calories, m.Protein, m.Carbs, m.Fats, m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating meal template %d: %w", m.ID, err)
	}
	return nil
}

// DeleteMealTemplate removes a template. Its log rows cascade away with it;
// log history for a deleted template is intentionally gone.
func (s *Store) DeleteMealTemplate(id int64) error {
	_, err := s.db.Exec("DELETE FROM meal_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting meal template %d: %w", id, err)
	}
	return nil
}

// SetMealFavorite toggles a meal template's favorite flag.
func (s *Store) SetMealFavorite(id int64, favorite bool) error {
	_, err := s.db.Exec("UPDATE meal_templates SET is_favorite = ? WHERE id = ?", boolInt(favorite), id)
	return err
}

// MealTemplates lists all meal templates, favorites first.
func (s *Store) MealTemplates() ([]model.MealTemplate, error) {
	rows, err := s.db.Query(`SELECT id, name, calories, protein, carbs, fats, is_favorite
		FROM meal_templates ORDER BY is_favorite DESC, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var templates []model.MealTemplate
	for rows.Next() {
		var m model.MealTemplate
		var fav int
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fats, &fav); err != nil {
			return nil, err
		}
		m.Favorite = fav != 0
		templates = append(templates, m)
	}
	return templates, rows.Err()
}

// MealTemplateByName returns the first meal template matching name exactly.
func (s *Store) MealTemplateByName(name string) (model.MealTemplate, error) {
	var m model.MealTemplate
	var fav int
	err := s.db.QueryRow(`SELECT id, name, calories, protein, carbs, fats, is_favorite
		FROM meal_templates WHERE name = ? LIMIT 1`, name,
	).Scan(&m.ID, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fats, &fav)
	if err != nil {
		return model.MealTemplate{}, fmt.Errorf("meal template %q: %w", name, err)
	}
	m.Favorite = fav != 0
	return m, nil
}

// CreateWorkoutTemplate inserts a workout template with its exercises in a
// single transaction and returns the assigned workout id.
func (s *Store) CreateWorkoutTemplate(w model.WorkoutTemplate) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("INSERT INTO workout_templates (name, is_favorite) VALUES (?, ?)",
		w.Name, boolInt(w.Favorite))
	if err != nil {
		return 0, fmt.Errorf("creating workout template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, ex := range w.Exercises {
		_, err := tx.Exec(`INSERT INTO workout_exercises (workout_id, name, target_sets, target_reps, position)
			VALUES (?, ?, ?, ?, ?)`,
			id, ex.Name, ex.TargetSets, ex.TargetReps, i,
		)
		if err != nil {
			return 0, fmt.Errorf("creating exercise %q: %w", ex.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateWorkoutTemplate renames a workout and replaces its exercise list.
func (s *Store) UpdateWorkoutTemplate(w model.WorkoutTemplate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("UPDATE workout_templates SET name = ? WHERE id = ?", w.Name, w.ID); err != nil {
		return fmt.Errorf("updating workout template %d: %w", w.ID, err)
	}
	if _, err := tx.Exec("DELETE FROM workout_exercises WHERE workout_id = ?", w.ID); err != nil {
		return fmt.Errorf("clearing exercises for workout %d: %w", w.ID, err)
	}
	for i, ex := range w.Exercises {
		_, err := tx.Exec(`INSERT INTO workout_exercises (workout_id, name, target_sets, target_reps, position)
			VALUES (?, ?, ?, ?, ?)`,
			w.ID, ex.Name, ex.TargetSets, ex.TargetReps, i,
		)
		if err != nil {
			return fmt.Errorf("creating exercise %q: %w", ex.Name, err)
		}
	}
	return tx.Commit()
}

// DeleteWorkoutTemplate removes a workout template. Exercises, logs, and set
// logs cascade away with it.
func (s *Store) DeleteWorkoutTemplate(id int64) error {
	_, err := s.db.Exec("DELETE FROM workout_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting workout template %d: %w", id, err)
	}
	return nil
}

// SetWorkoutFavorite toggles a workout template's favorite flag.
func (s *Store) SetWorkoutFavorite(id int64, favorite bool) error {
	_, err := s.db.Exec("UPDATE workout_templates SET is_favorite = ? WHERE id = ?", boolInt(favorite), id)
	return err
}

// WorkoutTemplates lists all workout templates with their exercises
// batch-loaded in position order.
func (s *Store) WorkoutTemplates() ([]model.WorkoutTemplate, error) {
	rows, err := s.db.Query("SELECT id, name, is_favorite FROM workout_templates ORDER BY is_favorite DESC, name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var workouts []model.WorkoutTemplate
	idx := make(map[int64]int)
	for rows.Next() {
		var w model.WorkoutTemplate
		var fav int
		if err := rows.Scan(&w.ID, &w.Name, &fav); err != nil {
			return nil, err
		}
		w.Favorite = fav != 0
		idx[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	exRows, err := s.db.Query(`SELECT id, workout_id, name, target_sets, target_reps, position
		FROM workout_exercises ORDER BY workout_id, position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = exRows.Close() }()

	for exRows.Next() {
		var ex model.Exercise
		if err := exRows.Scan(&ex.ID, &ex.WorkoutID, &ex.Name, &ex.TargetSets, &ex.TargetReps, &ex.Position); err != nil {
			return nil, err
		}
		if i, ok := idx[ex.WorkoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, ex)
		}
	}
	return workouts, exRows.Err()
}

// WorkoutTemplateByName returns the first workout template matching name,
// exercises included.
func (s *Store) WorkoutTemplateByName(name string) (model.WorkoutTemplate, error) {
	var w model.WorkoutTemplate
	var fav int
	err := s.db.QueryRow("SELECT id, name, is_favorite FROM workout_templates WHERE name = ? LIMIT 1", name).
		Scan(&w.ID, &w.Name, &fav)
	if err != nil {
		return model.WorkoutTemplate{}, fmt.Errorf("workout template %q: %w", name, err)
	}
	w.Favorite = fav != 0

	rows, err := s.db.Query(`SELECT id, workout_id, name, target_sets, target_reps, position
		FROM workout_exercises WHERE workout_id = ? ORDER BY position`, w.ID)
	if err != nil {
		return model.WorkoutTemplate{}, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var ex model.Exercise
		if err := rows.Scan(&ex.ID, &ex.WorkoutID, &ex.Name, &ex.TargetSets, &ex.TargetReps, &ex.Position); err != nil {
			return model.WorkoutTemplate{}, err
		}
		w.Exercises = append(w.Exercises, ex)
	}
	return w, rows.Err()
}

// ScheduleMeal associates a meal template with a weekday (0=Sunday..6).
func (s *Store) ScheduleMeal(templateID int64, weekday int) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO meal_schedule (template_id, weekday) VALUES (?, ?)", templateID, weekday)
	return err
}

// UnscheduleMeal removes a meal template's weekday association.
func (s *Store) UnscheduleMeal(templateID int64, weekday int) error {
	_, err := s.db.Exec("DELETE FROM meal_schedule WHERE template_id = ? AND weekday = ?", templateID, weekday)
	return err
}

// MealsForWeekday lists meal templates scheduled on a weekday.
func (s *Store) MealsForWeekday(weekday int) ([]model.MealTemplate, error) {
	rows, err := s.db.Query(`SELECT t.id, t.name, t.calories, t.protein, t.carbs, t.fats, t.is_favorite
		FROM meal_templates t
		JOIN meal_schedule sch ON sch.template_id = t.id
		WHERE sch.weekday = ?
		ORDER BY t.name`, weekday)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var templates []model.MealTemplate
	for rows.Next() {
		var m model.MealTemplate
		var fav int
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fats, &fav); err != nil {
			return nil, err
		}
		m.Favorite = fav != 0
		templates = append(templates, m)
	}
	return templates, rows.Err()
}

// ScheduleWorkout associates a workout template with a weekday (0=Sunday..6).
func (s *Store) ScheduleWorkout(workoutID int64, weekday int) error {
	_, err := s.db.Exec("INSERT OR IGNORE INTO workout_schedule (workout_id, weekday) VALUES (?, ?)", workoutID, weekday)
	return err
}

// UnscheduleWorkout removes a workout template's weekday association.
func (s *Store) UnscheduleWorkout(workoutID int64, weekday int) error {
	_, err := s.db.Exec("DELETE FROM workout_schedule WHERE workout_id = ? AND weekday = ?", workoutID, weekday)
	return err
}

// WorkoutsForWeekday lists workout templates scheduled on a weekday.
func (s *Store) WorkoutsForWeekday(weekday int) ([]model.WorkoutTemplate, error) {
	rows, err := s.db.Query(`SELECT t.id, t.name, t.is_favorite
		FROM workout_templates t
		JOIN workout_schedule sch ON sch.workout_id = t.id
		WHERE sch.weekday = ?
		ORDER BY t.name`, weekday)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var workouts []model.WorkoutTemplate
	for rows.Next() {
		var w model.WorkoutTemplate
		var fav int
		if err := rows.Scan(&w.ID, &w.Name, &fav); err != nil {
			return nil, err
		}
		w.Favorite = fav != 0
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

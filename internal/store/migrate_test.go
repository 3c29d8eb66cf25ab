package store

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fittrack.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s, path
}

func count(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}

func TestOpenSeedsDefaults(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	if n := count(t, s, "preferences"); n != len(defaultPreferences) {
		t.Fatalf("preferences = %d, want %d", n, len(defaultPreferences))
	}
	if n := count(t, s, "settings"); n != len(defaultSettings) {
		t.Fatalf("settings = %d, want %d", n, len(defaultSettings))
	}
	if n := count(t, s, "meal_templates"); n != len(starterMeals) {
		t.Fatalf("meal_templates = %d, want %d", n, len(starterMeals))
	}
	if n := count(t, s, "workout_templates"); n != 1 {
		t.Fatalf("workout_templates = %d, want 1", n)
	}
	if n := count(t, s, "workout_exercises"); n != len(starterWorkout.Exercises) {
		t.Fatalf("workout_exercises = %d, want %d", n, len(starterWorkout.Exercises))
	}
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	s, path := openTemp(t)
	before := map[string]int{}
	for _, table := range []string{"preferences", "settings", "meal_templates", "workout_templates", "workout_exercises"} {
		before[table] = count(t, s, table)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s2.Close()

	for table, want := range before {
		if got := count(t, s2, table); got != want {
			t.Errorf("%s after reopen = %d, want %d", table, got, want)
		}
	}
}

func TestReseedPreservesUserEdits(t *testing.T) {
	s, path := openTemp(t)

	if err := s.SetPreference("protein", false); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	seeded := starterMeals[0].Name
	tmpl, err := s.MealTemplateByName(seeded)
	if err != nil {
		t.Fatalf("MealTemplateByName: %v", err)
	}
	tmpl.Calories = 999
	if err := s.UpdateMealTemplate(tmpl); err != nil {
		t.Fatalf("UpdateMealTemplate: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s2.Close()

	prefs, err := s2.Preferences()
	if err != nil {
		t.Fatalf("Preferences: %v", err)
	}
	for _, p := range prefs {
		if p.StatName == "protein" && p.Enabled {
			t.Error("reseed re-enabled a user-disabled preference")
		}
	}

	tmpl2, err := s2.MealTemplateByName(seeded)
	if err != nil {
		t.Fatalf("MealTemplateByName after reopen: %v", err)
	}
	if tmpl2.Calories != 999 {
		t.Errorf("seeded template calories = %.0f, want 999 (user edit overwritten)", tmpl2.Calories)
	}
}

func hasIndex(t *testing.T, s *Store, name string) bool {
	t.Helper()
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", name).Scan(&n)
	if err != nil {
		t.Fatalf("querying sqlite_master for %s: %v", name, err)
	}
	return n == 1
}

func TestMealLogIndexesCreatedOnFreshDatabase(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	for _, idx := range []string{"idx_meal_logs_date", "idx_meal_logs_template"} {
		if !hasIndex(t, s, idx) {
			t.Errorf("index %s missing after Open", idx)
		}
	}
}

func TestAddColumnIsBenignWhenPresent(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	step := addColumn("goals", "weight_goal REAL NOT NULL DEFAULT 0")
	outcome, err := step(s.db)
	if err != nil {
		t.Fatalf("addColumn on existing column: %v", err)
	}
	if outcome != stepBenign {
		t.Fatalf("outcome = %v, want stepBenign", outcome)
	}
}

func TestLegacyMealLogColumnRename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	// Build a database shaped like the release before the rename.
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(on)")
	if err != nil {
		t.Fatalf("opening raw db: %v", err)
	}
	legacy := []string{
		`CREATE TABLE meal_templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			calories REAL NOT NULL DEFAULT 0,
			protein REAL NOT NULL DEFAULT 0,
			carbs REAL NOT NULL DEFAULT 0,
			fats REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE meal_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			meal_id INTEGER NOT NULL REFERENCES meal_templates(id) ON DELETE CASCADE,
			log_date TEXT NOT NULL,
			calories REAL NOT NULL DEFAULT 0,
			protein REAL NOT NULL DEFAULT 0,
			carbs REAL NOT NULL DEFAULT 0,
			fats REAL NOT NULL DEFAULT 0
		)`,
		`INSERT INTO meal_templates (name, calories) VALUES ('Legacy meal', 400)`,
		`INSERT INTO meal_logs (meal_id, log_date, calories) VALUES (1, '2025-01-06', 400)`,
	}
	for _, stmt := range legacy {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("building legacy db: %v", err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("closing raw db: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open on legacy db: %v", err)
	}
	defer s.Close()

	hasOld, err := columnExists(s.db, "meal_logs", "meal_id")
	if err != nil {
		t.Fatalf("columnExists: %v", err)
	}
	if hasOld {
		t.Error("meal_logs still has legacy meal_id column")
	}
	hasNew, err := columnExists(s.db, "meal_logs", "template_id")
	if err != nil {
		t.Fatalf("columnExists: %v", err)
	}
	if !hasNew {
		t.Fatal("meal_logs missing template_id column after migration")
	}

	logs, err := s.MealLogsByDate("2025-01-06")
	if err != nil {
		t.Fatalf("MealLogsByDate: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("migrated logs = %d, want 1", len(logs))
	}
	if logs[0].TemplateID != 1 || logs[0].Calories != 400 {
		t.Errorf("migrated log = {template %d, %.0f kcal}, want {template 1, 400 kcal}",
			logs[0].TemplateID, logs[0].Calories)
	}

	// The rebuilt table carries the indexes the fresh schema would have.
	for _, idx := range []string{"idx_meal_logs_date", "idx_meal_logs_template"} {
		if !hasIndex(t, s, idx) {
			t.Errorf("index %s missing after legacy migration", idx)
		}
	}

	// The guard no longer matches, so the step is a no-op from here on.
	outcome, err := renameMealLogTemplateColumn(s.db)
	if err != nil {
		t.Fatalf("re-running rename step: %v", err)
	}
	if outcome != stepSkipped {
		t.Fatalf("re-run outcome = %v, want stepSkipped", outcome)
	}
}

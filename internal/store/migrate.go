package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// stepOutcome classifies what a migration step did, so "column already
// exists" is an explicit benign result rather than a swallowed error.
type stepOutcome int

const (
	stepApplied stepOutcome = iota
	stepSkipped
	stepBenign
)

// migration is one schema evolution step. Steps are identified by structural
// detection, not version numbers, so the list is append-only and a shipped
// step's logic never changes.
type migration struct {
	name string
	run  func(db *sql.DB) (stepOutcome, error)
}

var migrations = []migration{
	{"meal_templates add is_favorite", addColumn("meal_templates", "is_favorite INTEGER NOT NULL DEFAULT 0")},
	{"workout_templates add is_favorite", addColumn("workout_templates", "is_favorite INTEGER NOT NULL DEFAULT 0")},
	{"goals add weight_goal", addColumn("goals", "weight_goal REAL NOT NULL DEFAULT 0")},
	{"meal_logs rename meal_id to template_id", renameMealLogTemplateColumn},
	{"meal_logs ensure indexes", ensureMealLogIndexes},
}

// migrate runs every step in order. A failing step is collected, not fatal
// to the remaining independent steps; the joined error surfaces to Open.
func (s *Store) migrate() error {
	var errs []error
	for _, m := range migrations {
		if _, err := m.run(s.db); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.name, err))
		}
	}
	return errors.Join(errs...)
}

// addColumn returns a step that adds a column unconditionally. SQLite has no
// ADD COLUMN IF NOT EXISTS, so the duplicate-column failure is the expected
// outcome on an already-migrated database.
func addColumn(table, columnDef string) func(db *sql.DB) (stepOutcome, error) {
	return func(db *sql.DB) (stepOutcome, error) {
		_, err := db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, columnDef))
		if err != nil {
			if isDuplicateColumn(err) {
				return stepBenign, nil
			}
			return stepSkipped, fmt.Errorf("adding column: %w", err)
		}
		return stepApplied, nil
	}
}

func isDuplicateColumn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}

// columnExists checks a table's columns via PRAGMA table_info.
func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// renameMealLogTemplateColumn rebuilds meal_logs via the shadow-table
// pattern: the legacy column meal_id becomes template_id. The structural
// guard (old column present, new column absent) is the only gate, so a crash
// mid-transaction is retried safely on next boot — the replacement table is
// not visible under the final name until the transaction commits.
func renameMealLogTemplateColumn(db *sql.DB) (stepOutcome, error) {
	hasOld, err := columnExists(db, "meal_logs", "meal_id")
	if err != nil {
		return stepSkipped, fmt.Errorf("inspecting meal_logs: %w", err)
	}
	hasNew, err := columnExists(db, "meal_logs", "template_id")
	if err != nil {
		return stepSkipped, fmt.Errorf("inspecting meal_logs: %w", err)
	}
	if !hasOld || hasNew {
		return stepSkipped, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return stepSkipped, fmt.Errorf("beginning rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmts := []string{
		`CREATE TABLE meal_logs_new (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id   INTEGER NOT NULL REFERENCES meal_templates(id) ON DELETE CASCADE,
			log_date      TEXT NOT NULL,
			calories      REAL NOT NULL DEFAULT 0,
			protein       REAL NOT NULL DEFAULT 0,
			carbs         REAL NOT NULL DEFAULT 0,
			fats          REAL NOT NULL DEFAULT 0
		)`,
		`INSERT INTO meal_logs_new (id, template_id, log_date, calories, protein, carbs, fats)
			SELECT id, meal_id, log_date, calories, protein, carbs, fats FROM meal_logs`,
		`DROP TABLE meal_logs`,
		`ALTER TABLE meal_logs_new RENAME TO meal_logs`,
		`CREATE INDEX IF NOT EXISTS idx_meal_logs_date ON meal_logs(log_date)`,
		`CREATE INDEX IF NOT EXISTS idx_meal_logs_template ON meal_logs(template_id)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return stepSkipped, fmt.Errorf("rebuilding meal_logs: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return stepSkipped, fmt.Errorf("committing rebuild: %w", err)
	}
	return stepApplied, nil
}

// ensureMealLogIndexes creates the meal_logs indexes. They cannot live in
// schemaSQL: on a legacy database template_id does not exist until the
// rename step above has run, and an index statement referencing it would
// make schema creation fail before migrations ever start.
func ensureMealLogIndexes(db *sql.DB) (stepOutcome, error) {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_meal_logs_date ON meal_logs(log_date)`,
		`CREATE INDEX IF NOT EXISTS idx_meal_logs_template ON meal_logs(template_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return stepSkipped, fmt.Errorf("creating index: %w", err)
		}
	}
	return stepApplied, nil
}

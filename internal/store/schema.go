package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS meal_templates (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    calories      REAL NOT NULL DEFAULT 0,
    protein       REAL NOT NULL DEFAULT 0,
    carbs         REAL NOT NULL DEFAULT 0,
    fats          REAL NOT NULL DEFAULT 0,
    is_favorite   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meal_logs (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    template_id   INTEGER NOT NULL REFERENCES meal_templates(id) ON DELETE CASCADE,
    log_date      TEXT NOT NULL,
    calories      REAL NOT NULL DEFAULT 0,
    protein       REAL NOT NULL DEFAULT 0,
    carbs         REAL NOT NULL DEFAULT 0,
    fats          REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS workout_templates (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    is_favorite   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS workout_exercises (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    workout_id    INTEGER NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
    name          TEXT NOT NULL,
    target_sets   INTEGER NOT NULL DEFAULT 0,
    target_reps   INTEGER NOT NULL DEFAULT 0,
    position      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS workout_logs (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    workout_id    INTEGER NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
    log_date      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS set_logs (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    workout_log_id INTEGER NOT NULL REFERENCES workout_logs(id) ON DELETE CASCADE,
    exercise_id    INTEGER NOT NULL REFERENCES workout_exercises(id) ON DELETE CASCADE,
    set_number     INTEGER NOT NULL DEFAULT 1,
    reps           INTEGER NOT NULL DEFAULT 0,
    weight         REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meal_schedule (
    template_id   INTEGER NOT NULL REFERENCES meal_templates(id) ON DELETE CASCADE,
    weekday       INTEGER NOT NULL CHECK (weekday BETWEEN 0 AND 6),
    PRIMARY KEY (template_id, weekday)
);

CREATE TABLE IF NOT EXISTS workout_schedule (
    workout_id    INTEGER NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
    weekday       INTEGER NOT NULL CHECK (weekday BETWEEN 0 AND 6),
    PRIMARY KEY (workout_id, weekday)
);

CREATE TABLE IF NOT EXISTS goals (
    goal_date     TEXT PRIMARY KEY,
    calorie_goal  REAL NOT NULL DEFAULT 0,
    protein_goal  REAL NOT NULL DEFAULT 0,
    carb_goal     REAL NOT NULL DEFAULT 0,
    fat_goal      REAL NOT NULL DEFAULT 0,
    weight_goal   REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS preferences (
    stat_name     TEXT PRIMARY KEY,
    is_enabled    INTEGER NOT NULL DEFAULT 1,
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
    setting_key   TEXT PRIMARY KEY,
    setting_value TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_workout_logs_date ON workout_logs(log_date);
CREATE INDEX IF NOT EXISTS idx_set_logs_workout_log ON set_logs(workout_log_id);
`

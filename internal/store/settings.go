package store

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/model"
)

// Preferences returns every stat toggle in display order. Seeding guarantees
// the known key space exists after first boot.
func (s *Store) Preferences() ([]model.Preference, error) {
	rows, err := s.db.Query("SELECT stat_name, is_enabled, display_order FROM preferences ORDER BY display_order, stat_name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var prefs []model.Preference
	for rows.Next() {
		var p model.Preference
		var enabled int
		if err := rows.Scan(&p.StatName, &enabled, &p.DisplayOrder); err != nil {
			return nil, err
		}
		p.Enabled = enabled != 0
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

// SetPreference toggles an existing stat. An unknown name updates nothing
// and is not an error; it must never corrupt existing rows.
func (s *Store) SetPreference(name string, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	_, err := s.db.Exec("UPDATE preferences SET is_enabled = ? WHERE stat_name = ?", v, name)
	if err != nil {
		return fmt.Errorf("updating preference %q: %w", name, err)
	}
	return nil
}

// Setting returns the stored value for key, or fallback when the key is
// missing or unreadable.
func (s *Store) Setting(key, fallback string) string {
	var value string
	err := s.db.QueryRow("SELECT setting_value FROM settings WHERE setting_key = ?", key).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

// SetSetting upserts a setting value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO settings (setting_key, setting_value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

// StreakMetric returns the metric currently driving streak counting,
// falling back to calories when the stored value is missing or unknown.
func (s *Store) StreakMetric() model.Metric {
	m := model.Metric(s.Setting("streak_metric", string(model.MetricCalories)))
	if !model.ValidMetric(m) {
		return model.MetricCalories
	}
	return m
}

package store

import (
	"testing"

	"github.com/theirongolddev/fittrack/internal/model"
)

func TestSetPreferenceUnknownNameIsNoOp(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	if err := s.SetPreference("does-not-exist", true); err != nil {
		t.Fatalf("SetPreference unknown: %v", err)
	}

	prefs, err := s.Preferences()
	if err != nil {
		t.Fatalf("Preferences: %v", err)
	}
	if len(prefs) != len(defaultPreferences) {
		t.Errorf("preferences = %d, want %d (unknown name created a row)", len(prefs), len(defaultPreferences))
	}
}

func TestPreferencesOrderedByDisplayOrder(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	prefs, err := s.Preferences()
	if err != nil {
		t.Fatalf("Preferences: %v", err)
	}
	for i, p := range prefs {
		if p.StatName != defaultPreferences[i].StatName {
			t.Fatalf("prefs[%d] = %q, want %q", i, p.StatName, defaultPreferences[i].StatName)
		}
	}
}

func TestSettingUpsertAndFallback(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	if got := s.Setting("missing_key", "fallback"); got != "fallback" {
		t.Errorf("Setting(missing) = %q, want fallback", got)
	}

	if err := s.SetSetting("week_start", "sunday"); err != nil {
		t.Fatalf("SetSetting existing: %v", err)
	}
	if got := s.Setting("week_start", "monday"); got != "sunday" {
		t.Errorf("Setting(week_start) = %q, want sunday", got)
	}

	if err := s.SetSetting("brand_new", "v1"); err != nil {
		t.Fatalf("SetSetting new: %v", err)
	}
	if got := s.Setting("brand_new", ""); got != "v1" {
		t.Errorf("Setting(brand_new) = %q, want v1", got)
	}
}

func TestStreakMetricValidation(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	if got := s.StreakMetric(); got != model.MetricCalories {
		t.Fatalf("default StreakMetric = %q, want calories", got)
	}

	if err := s.SetSetting("streak_metric", "workouts"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if got := s.StreakMetric(); got != model.MetricWorkouts {
		t.Errorf("StreakMetric = %q, want workouts", got)
	}

	if err := s.SetSetting("streak_metric", "nonsense"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if got := s.StreakMetric(); got != model.MetricCalories {
		t.Errorf("StreakMetric with bad value = %q, want calories fallback", got)
	}
}

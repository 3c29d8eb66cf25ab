package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatGrams(t *testing.T) {
	if got := FormatGrams(150); got != "150g" {
		t.Errorf("FormatGrams(150) = %q, want 150g", got)
	}
	if got := FormatGrams(62.5); got != "62.5g" {
		t.Errorf("FormatGrams(62.5) = %q, want 62.5g", got)
	}
}

func TestFormatKcal(t *testing.T) {
	if got := FormatKcal(1800); got != "1,800 kcal" {
		t.Errorf("FormatKcal(1800) = %q, want 1,800 kcal", got)
	}
}

func TestBarClamps(t *testing.T) {
	if got := Bar(150, 4); got != "████" {
		t.Errorf("Bar(150) = %q, want full bar", got)
	}
	if got := Bar(-5, 4); got != "░░░░" {
		t.Errorf("Bar(-5) = %q, want empty bar", got)
	}
	if got := Bar(50, 4); got != "██░░" {
		t.Errorf("Bar(50) = %q, want half bar", got)
	}
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagGoalCalories float64
	flagGoalProtein  float64
	flagGoalCarbs    float64
	flagGoalFats     float64
	flagGoalWeight   float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or set macro and weight goals",
	RunE:  runGoalShow,
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the goal effective from a date onward",
	Long: "Set the goal effective from --date (default today) onward. " +
		"Any goals scheduled after that date are replaced.",
	RunE: runGoalSet,
}

func init() {
	goalSetCmd.Flags().Float64Var(&flagGoalCalories, "calories", 0, "Daily calorie goal (kcal)")
	goalSetCmd.Flags().Float64Var(&flagGoalProtein, "protein", 0, "Daily protein goal (g)")
	goalSetCmd.Flags().Float64Var(&flagGoalCarbs, "carbs", 0, "Daily carb goal (g)")
	goalSetCmd.Flags().Float64Var(&flagGoalFats, "fats", 0, "Daily fat goal (g)")
	goalSetCmd.Flags().Float64Var(&flagGoalWeight, "weight", 0, "Target body weight")
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalShow(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := targetDate()
	if err != nil {
		return err
	}

	g := s.ResolveGoal(date)
	since := g.Date
	if since == "" {
		since = "default"
	}

	fmt.Println()
	fmt.Printf("  Goal effective on %s (since %s):\n", date, since)
	fmt.Printf("    calories  %s\n", cli.FormatKcal(g.Calories))
	fmt.Printf("    protein   %s\n", cli.FormatGrams(g.Protein))
	fmt.Printf("    carbs     %s\n", cli.FormatGrams(g.Carbs))
	fmt.Printf("    fats      %s\n", cli.FormatGrams(g.Fats))
	if g.Weight > 0 {
		fmt.Printf("    weight    %.1f\n", g.Weight)
	}
	fmt.Println()
	return nil
}

func runGoalSet(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := targetDate()
	if err != nil {
		return err
	}

	// Unset flags inherit from the goal currently effective on the date.
	g := s.ResolveGoal(date)
	if flagGoalCalories > 0 {
		g.Calories = flagGoalCalories
	}
	if flagGoalProtein > 0 {
		g.Protein = flagGoalProtein
	}
	if flagGoalCarbs > 0 {
		g.Carbs = flagGoalCarbs
	}
	if flagGoalFats > 0 {
		g.Fats = flagGoalFats
	}
	if flagGoalWeight > 0 {
		g.Weight = flagGoalWeight
	}

	if err := s.SetGoal(date, g); err != nil {
		return err
	}

	fmt.Printf("  Goal set from %s onward.\n", date)
	return nil
}

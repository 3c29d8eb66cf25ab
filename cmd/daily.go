package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/fittrack/internal/analytics"
	"github.com/theirongolddev/fittrack/internal/cli"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily totals table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := targetDate()
	if err != nil {
		return err
	}

	engine := analytics.New(s, s)
	totals := engine.DailyTotals(date)
	goal := s.ResolveGoal(date)

	rows := [][]string{
		{"Calories", cli.FormatKcal(totals.Calories), cli.FormatKcal(goal.Calories),
			cli.FormatPercent(analytics.Percentage(totals.Calories, goal.Calories))},
		{"Protein", cli.FormatGrams(totals.Protein), cli.FormatGrams(goal.Protein),
			cli.FormatPercent(analytics.Percentage(totals.Protein, goal.Protein))},
		{"Carbs", cli.FormatGrams(totals.Carbs), cli.FormatGrams(goal.Carbs),
			cli.FormatPercent(analytics.Percentage(totals.Carbs, goal.Carbs))},
		{"Fats", cli.FormatGrams(totals.Fats), cli.FormatGrams(goal.Fats),
			cli.FormatPercent(analytics.Percentage(totals.Fats, goal.Fats))},
		{"---"},
		{"Meals", strconv.Itoa(totals.Meals), "", ""},
		{"Workouts", strconv.Itoa(totals.Workouts), "", ""},
		{"Sets", strconv.Itoa(totals.Sets), "", ""},
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Daily — " + date,
		Headers: []string{"Stat", "Logged", "Goal", "Done"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

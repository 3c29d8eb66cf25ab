package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/fittrack/internal/analytics"
	"github.com/theirongolddev/fittrack/internal/cli"
	"github.com/theirongolddev/fittrack/internal/model"

	"github.com/spf13/cobra"
)

var flagSundayStart bool

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly totals and 7-day breakdown",
	RunE:  runWeekly,
}

func init() {
	weeklyCmd.Flags().BoolVar(&flagSundayStart, "sunday-start", false, "Anchor the week on Sunday instead of Monday")
	rootCmd.AddCommand(weeklyCmd)
}

// weekStartDate anchors the target date's week. Monday is the progress-view
// default; history views anchor on Sunday via --sunday-start.
func weekStartDate(date string, sundayStart bool) (string, error) {
	t, err := model.ParseDate(date)
	if err != nil {
		return "", err
	}
	if sundayStart {
		return model.DateOf(analytics.SundayOf(t)), nil
	}
	return model.DateOf(analytics.MondayOf(t)), nil
}

func runWeekly(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := targetDate()
	if err != nil {
		return err
	}
	weekStart, err := weekStartDate(date, flagSundayStart)
	if err != nil {
		return err
	}

	engine := analytics.New(s, s)
	totals := engine.WeeklyTotals(weekStart)
	weekGoal := s.ResolveWeeklyGoal(weekStart)
	breakdown := engine.WeeklyBreakdown(weekStart)

	rows := make([][]string, 0, len(breakdown)+2)
	for _, d := range breakdown {
		rows = append(rows, []string{
			d.Day + " " + d.Date,
			cli.FormatKcal(d.Calories),
			cli.FormatGrams(d.Protein),
			cli.FormatGrams(d.Carbs),
			cli.FormatGrams(d.Fats),
			strconv.Itoa(d.Workouts),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatKcal(totals.Calories),
		cli.FormatGrams(totals.Protein),
		cli.FormatGrams(totals.Carbs),
		cli.FormatGrams(totals.Fats),
		strconv.Itoa(totals.Workouts),
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Week of " + weekStart,
		Headers: []string{"Day", "Calories", "Protein", "Carbs", "Fats", "Workouts"},
		Rows:    rows,
	}))

	pct := analytics.Percentage(totals.Calories, weekGoal.Calories)
	tier := analytics.ClassifyCompletion(pct)
	fmt.Printf("\n  Calories vs weekly goal: %s %s\n\n",
		cli.RenderTier(tier, cli.Bar(pct, 28)),
		cli.FormatPercent(pct),
	)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/analytics"
	"github.com/theirongolddev/fittrack/internal/cli"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Days this week with logged activity",
	RunE:  runStreak,
}

func init() {
	streakCmd.Flags().BoolVar(&flagSundayStart, "sunday-start", false, "Anchor the week on Sunday instead of Monday")
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
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

	metric := s.StreakMetric()
	engine := analytics.New(s, s)
	count := engine.StreakCount(weekStart, metric)
	tiers := engine.StreakTiers(weekStart, metric)
	breakdown := engine.WeeklyBreakdown(weekStart)

	fmt.Println()
	fmt.Printf("  Streak (%s): %d/7 days this week\n\n  ", metric, count)
	for i, tier := range tiers {
		fmt.Printf("%s %s   ", breakdown[i].Day, cli.RenderStreakDay(tier))
	}
	fmt.Println()
	fmt.Println()
	return nil
}

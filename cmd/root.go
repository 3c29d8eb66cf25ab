package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/fittrack/internal/analytics"
	"github.com/theirongolddev/fittrack/internal/cli"
	"github.com/theirongolddev/fittrack/internal/config"
	"github.com/theirongolddev/fittrack/internal/model"
	"github.com/theirongolddev/fittrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB   string
	flagDate string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Local fitness and nutrition tracker",
	Long:  "Track meals, workouts, and goals in a local database. No accounts, no sync.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file path (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Date to operate on, YYYY-MM-DD (default: today)")
}

// openStore is the shared open path used by all commands: config file,
// path override flag, then open+migrate+seed.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}

	path := flagDB
	if path == "" {
		path = config.DataPath(cfg)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", path, err)
	}
	return s, nil
}

// targetDate resolves the --date flag, defaulting to today.
func targetDate() (string, error) {
	if flagDate == "" {
		return model.DateOf(time.Now()), nil
	}
	if !model.ValidDate(flagDate) {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagDate)
	}
	return flagDate, nil
}

func runStatus(_ *cobra.Command, _ []string) error {
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

	prefs, err := s.Preferences()
	if err != nil {
		prefs = nil
	}
	enabled := make(map[string]bool)
	for _, p := range prefs {
		enabled[p.StatName] = p.Enabled
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("fittrack — " + date))
	fmt.Println()

	printStat := func(name, actual, target string, pct float64) {
		if len(enabled) > 0 && !enabled[name] {
			return
		}
		tier := analytics.ClassifyCompletion(pct)
		fmt.Printf("  %-10s %s  %s %s\n",
			name,
			cli.RenderTier(tier, cli.Bar(pct, 20)),
			actual,
			cli.RenderMuted("/ "+target),
		)
	}

	printStat("calories", cli.FormatKcal(totals.Calories), cli.FormatKcal(goal.Calories),
		analytics.Percentage(totals.Calories, goal.Calories))
	printStat("protein", cli.FormatGrams(totals.Protein), cli.FormatGrams(goal.Protein),
		analytics.Percentage(totals.Protein, goal.Protein))
	printStat("carbs", cli.FormatGrams(totals.Carbs), cli.FormatGrams(goal.Carbs),
		analytics.Percentage(totals.Carbs, goal.Carbs))
	printStat("fats", cli.FormatGrams(totals.Fats), cli.FormatGrams(goal.Fats),
		analytics.Percentage(totals.Fats, goal.Fats))

	if len(enabled) == 0 || enabled["workouts"] {
		fmt.Printf("  %-10s %d logged (%d sets)\n", "workouts", totals.Workouts, totals.Sets)
	}
	fmt.Println()
	return nil
}

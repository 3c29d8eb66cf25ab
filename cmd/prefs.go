package cmd

import (
	"fmt"

	"github.com/theirongolddev/fittrack/internal/cli"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and toggle stat visibility",
	RunE:  runPrefsList,
}

var prefsEnableCmd = &cobra.Command{
	Use:   "enable <stat>",
	Short: "Show a stat",
	Args:  cobra.ExactArgs(1),
	RunE:  makeTogglePref(true),
}

var prefsDisableCmd = &cobra.Command{
	Use:   "disable <stat>",
	Short: "Hide a stat",
	Args:  cobra.ExactArgs(1),
	RunE:  makeTogglePref(false),
}

var setCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Show or set a stored setting (e.g. streak_metric)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSet,
}

func init() {
	prefsCmd.AddCommand(prefsEnableCmd)
	prefsCmd.AddCommand(prefsDisableCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(setCmd)
}

func runPrefsList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	prefs, err := s.Preferences()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(prefs))
	for _, p := range prefs {
		state := "off"
		if p.Enabled {
			state = "on"
		}
		rows = append(rows, []string{p.StatName, state})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Stats",
		Headers: []string{"Stat", "Shown"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func makeTogglePref(enabled bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SetPreference(args[0], enabled); err != nil {
			return err
		}
		fmt.Printf("  %s: %v\n", args[0], enabled)
		return nil
	}
}

func runSet(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		fmt.Printf("  %s = %s\n", args[0], s.Setting(args[0], ""))
		return nil
	}

	if err := s.SetSetting(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("  %s = %s\n", args[0], args[1])
	return nil
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/fittrack/internal/model"

	"github.com/spf13/cobra"
)

var flagSets []string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log meals and workouts",
}

var logMealCmd = &cobra.Command{
	Use:   "meal <template name>",
	Short: "Log a meal from a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogMeal,
}

var logWorkoutCmd = &cobra.Command{
	Use:   "workout <template name>",
	Short: "Log a workout execution, optionally with sets",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogWorkout,
}

func init() {
	logWorkoutCmd.Flags().StringArrayVar(&flagSets, "set", nil,
		"Performed set as exercise:reps[xWEIGHT], repeatable (e.g. --set Squat:8x100)")
	logCmd.AddCommand(logMealCmd)
	logCmd.AddCommand(logWorkoutCmd)
	rootCmd.AddCommand(logCmd)
}

func runLogMeal(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := targetDate()
	if err != nil {
		return err
	}

	tmpl, err := s.MealTemplateByName(args[0])
	if err != nil {
		return err
	}
	if _, err := s.LogMeal(tmpl.ID, date); err != nil {
		return err
	}

	fmt.Printf("  Logged %q on %s (%.0f kcal).\n", tmpl.Name, date, tmpl.Calories)
	return nil
}

func runLogWorkout(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := targetDate()
	if err != nil {
		return err
	}

	tmpl, err := s.WorkoutTemplateByName(args[0])
	if err != nil {
		return err
	}
	logID, err := s.LogWorkout(tmpl.ID, date)
	if err != nil {
		return err
	}

	exercises := make(map[string]model.Exercise, len(tmpl.Exercises))
	setNumbers := make(map[int64]int)
	for _, ex := range tmpl.Exercises {
		exercises[strings.ToLower(ex.Name)] = ex
	}

	logged := 0
	for _, spec := range flagSets {
		set, exName, err := parseSetSpec(spec)
		if err != nil {
			return err
		}
		ex, ok := exercises[strings.ToLower(exName)]
		if !ok {
			return fmt.Errorf("workout %q has no exercise %q", tmpl.Name, exName)
		}
		setNumbers[ex.ID]++
		set.WorkoutLogID = logID
		set.ExerciseID = ex.ID
		set.SetNumber = setNumbers[ex.ID]
		if _, err := s.LogSet(set); err != nil {
			return err
		}
		logged++
	}

	fmt.Printf("  Logged %q on %s (%d sets).\n", tmpl.Name, date, logged)
	return nil
}

// parseSetSpec parses "exercise:reps" or "exercise:repsxweight".
func parseSetSpec(spec string) (model.SetLog, string, error) {
	name, rest, ok := strings.Cut(spec, ":")
	if !ok || name == "" {
		return model.SetLog{}, "", fmt.Errorf("invalid set %q, want exercise:reps[xWEIGHT]", spec)
	}

	repsPart, weightPart, hasWeight := strings.Cut(rest, "x")
	reps, err := strconv.Atoi(repsPart)
	if err != nil || reps <= 0 {
		return model.SetLog{}, "", fmt.Errorf("invalid reps in set %q", spec)
	}

	var weight float64
	if hasWeight {
		weight, err = strconv.ParseFloat(weightPart, 64)
		if err != nil || weight < 0 {
			return model.SetLog{}, "", fmt.Errorf("invalid weight in set %q", spec)
		}
	}

	return model.SetLog{Reps: reps, Weight: weight}, name, nil
}

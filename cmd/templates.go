package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/fittrack/internal/cli"
	"github.com/theirongolddev/fittrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagTmplCalories float64
	flagTmplProtein  float64
	flagTmplCarbs    float64
	flagTmplFats     float64
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage meal and workout templates",
	RunE:  runTemplatesList,
}

var templatesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a meal template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesAdd,
}

var templatesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a meal template and all its logged meals",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesRm,
}

var templatesFavCmd = &cobra.Command{
	Use:   "fav <name>",
	Short: "Toggle a meal template's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesFav,
}

func init() {
	templatesAddCmd.Flags().Float64Var(&flagTmplCalories, "calories", 0, "Calories (kcal)")
	templatesAddCmd.Flags().Float64Var(&flagTmplProtein, "protein", 0, "Protein (g)")
	templatesAddCmd.Flags().Float64Var(&flagTmplCarbs, "carbs", 0, "Carbs (g)")
	templatesAddCmd.Flags().Float64Var(&flagTmplFats, "fats", 0, "Fats (g)")
	templatesCmd.AddCommand(templatesAddCmd)
	templatesCmd.AddCommand(templatesRmCmd)
	templatesCmd.AddCommand(templatesFavCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	meals, err := s.MealTemplates()
	if err != nil {
		return err
	}
	workouts, err := s.WorkoutTemplates()
	if err != nil {
		return err
	}

	mealRows := make([][]string, 0, len(meals))
	for _, m := range meals {
		fav := ""
		if m.Favorite {
			fav = "★"
		}
		mealRows = append(mealRows, []string{
			m.Name,
			cli.FormatKcal(m.Calories),
			cli.FormatGrams(m.Protein),
			cli.FormatGrams(m.Carbs),
			cli.FormatGrams(m.Fats),
			fav,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Meals",
		Headers: []string{"Name", "Calories", "Protein", "Carbs", "Fats", ""},
		Rows:    mealRows,
	}))

	workoutRows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		fav := ""
		if w.Favorite {
			fav = "★"
		}
		workoutRows = append(workoutRows, []string{w.Name, strconv.Itoa(len(w.Exercises)), fav})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Workouts",
		Headers: []string{"Name", "Exercises", ""},
		Rows:    workoutRows,
	}))
	fmt.Println()
	return nil
}

func runTemplatesAdd(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.CreateMealTemplate(model.MealTemplate{
		Name:     args[0],
		Calories: flagTmplCalories,
		Protein:  flagTmplProtein,
		Carbs:    flagTmplCarbs,
		Fats:     flagTmplFats,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Added meal template %q (#%d).\n", args[0], id)
	return nil
}

func runTemplatesRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tmpl, err := s.MealTemplateByName(args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteMealTemplate(tmpl.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted %q and its logged meals.\n", tmpl.Name)
	return nil
}

func runTemplatesFav(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tmpl, err := s.MealTemplateByName(args[0])
	if err != nil {
		return err
	}
	if err := s.SetMealFavorite(tmpl.ID, !tmpl.Favorite); err != nil {
		return err
	}
	fmt.Printf("  %q favorite: %v.\n", tmpl.Name, !tmpl.Favorite)
	return nil
}

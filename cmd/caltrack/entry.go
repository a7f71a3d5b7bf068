package caltrack

import (
	"context"
	"fmt"
	"strings"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage meal entries",
}

var (
	entryTitle    string
	entryMeal     string
	entryPhoto    string
	entryNotes    string
	entryDate     string
	entryCalories int
	entryProtein  int
	entryCarbs    int
	entryFat      int
	entryFiber    int
	entryEstimate string
	entryTemplate string
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new meal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDate(entryDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			in, err := buildEntryAddInput(ctx, cmd, st)
			if err != nil {
				return err
			}
			if err := st.SetActiveDate(day); err != nil {
				return err
			}
			e, err := st.Add(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s\n", e.ID)
			return nil
		})
	},
}

// buildEntryAddInput assembles the add input from flags. --estimate and
// --template prefill the macro fields; explicitly set flags win over the
// prefilled values.
func buildEntryAddInput(ctx context.Context, cmd *cobra.Command, st *store.Store) (store.AddInput, error) {
	if strings.TrimSpace(entryEstimate) != "" && strings.TrimSpace(entryTemplate) != "" {
		return store.AddInput{}, fmt.Errorf("cannot combine --estimate with --template")
	}

	in := store.AddInput{
		Title:    entryTitle,
		MealType: entryMeal,
		Photo:    entryPhoto,
		Notes:    entryNotes,
		Calories: entryCalories,
		Protein:  entryProtein,
		Carbs:    entryCarbs,
		Fat:      entryFat,
		Fiber:    entryFiber,
	}

	switch {
	case strings.TrimSpace(entryEstimate) != "":
		res, err := estimator.Estimate(ctx, entryEstimate)
		if err != nil {
			return store.AddInput{}, err
		}
		flags := cmd.Flags()
		if !flags.Changed("title") {
			in.Title = res.Label
		}
		if !flags.Changed("calories") {
			in.Calories = res.Calories
		}
		if !flags.Changed("protein") {
			in.Protein = res.Protein
		}
		if !flags.Changed("carbs") {
			in.Carbs = res.Carbs
		}
		if !flags.Changed("fat") {
			in.Fat = res.Fat
		}
		if !flags.Changed("fiber") {
			in.Fiber = res.Fiber
		}
	case strings.TrimSpace(entryTemplate) != "":
		tpl, ok := st.Template(entryTemplate)
		if !ok {
			return store.AddInput{}, fmt.Errorf("template %q not found", entryTemplate)
		}
		flags := cmd.Flags()
		if !flags.Changed("title") {
			in.Title = tpl.Title
		}
		if !flags.Changed("meal") {
			in.MealType = tpl.MealType
		}
		if !flags.Changed("notes") {
			in.Notes = tpl.Notes
		}
		if !flags.Changed("calories") {
			in.Calories = tpl.Calories
		}
		if !flags.Changed("protein") {
			in.Protein = tpl.Protein
		}
		if !flags.Changed("carbs") {
			in.Carbs = tpl.Carbs
		}
		if !flags.Changed("fat") {
			in.Fat = tpl.Fat
		}
		if !flags.Changed("fiber") {
			in.Fiber = tpl.Fiber
		}
	default:
		if strings.TrimSpace(entryTitle) == "" {
			return store.AddInput{}, fmt.Errorf("--title is required when --estimate and --template are not used")
		}
	}
	return in, nil
}

var (
	listDate string
	listDays int
	listMeal string
)

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for a day or a trailing window",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDate(listDate)
		if err != nil {
			return err
		}
		meal := model.NormalizeMealType(listMeal)
		if strings.TrimSpace(listMeal) != "" && meal == "" {
			return fmt.Errorf("invalid --meal %q (use breakfast, lunch, dinner, or snack)", listMeal)
		}
		if listDays < 1 {
			return fmt.Errorf("--days must be >= 1")
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			var entries []model.Entry
			if listDays > 1 {
				from, err := dates.Shift(day, -(listDays - 1))
				if err != nil {
					return err
				}
				for _, e := range st.Entries() {
					if e.Date >= from && e.Date <= day {
						entries = append(entries, e)
					}
				}
			} else {
				entries = st.EntriesOn(day)
			}

			fmt.Fprintln(cmd.OutOrStdout(), entryRowHeader)
			for _, e := range entries {
				if meal != "" && e.MealType != meal {
					continue
				}
				printEntryRow(cmd, e)
			}
			return nil
		})
	},
}

var entryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			e, ok := st.Entry(args[0])
			if !ok {
				return fmt.Errorf("no entry with id %q", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %s\n", e.ID)
			fmt.Fprintf(out, "Date: %s\n", e.Date)
			fmt.Fprintf(out, "Time: %s\n", e.Time)
			fmt.Fprintf(out, "Title: %s\n", e.Title)
			if e.MealType != "" {
				fmt.Fprintf(out, "Meal: %s\n", e.MealType)
			}
			fmt.Fprintf(out, "Calories: %d\n", e.Calories)
			fmt.Fprintf(out, "Protein: %dg\nCarbs: %dg\nFat: %dg\nFiber: %dg\n", e.Protein, e.Carbs, e.Fat, e.Fiber)
			if e.Photo != "" {
				fmt.Fprintf(out, "Photo: %s\n", e.Photo)
			}
			if e.Notes != "" {
				fmt.Fprintf(out, "Notes: %s\n", e.Notes)
			}
			return nil
		})
	},
}

var (
	updateTitle    string
	updateMeal     string
	updatePhoto    string
	updateNotes    string
	updateCalories int
	updateProtein  int
	updateCarbs    int
	updateFat      int
	updateFiber    int
)

var entryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an entry; only the flags you pass change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := buildEntryPatch(cmd)
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			e, found, err := st.Update(ctx, args[0], patch)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", e.ID)
			return nil
		})
	},
}

func buildEntryPatch(cmd *cobra.Command) store.EntryPatch {
	flags := cmd.Flags()
	var patch store.EntryPatch
	if flags.Changed("title") {
		patch.Title = &updateTitle
	}
	if flags.Changed("meal") {
		patch.MealType = &updateMeal
	}
	if flags.Changed("photo") {
		patch.Photo = &updatePhoto
	}
	if flags.Changed("notes") {
		patch.Notes = &updateNotes
	}
	if flags.Changed("calories") {
		patch.Calories = &updateCalories
	}
	if flags.Changed("protein") {
		patch.Protein = &updateProtein
	}
	if flags.Changed("carbs") {
		patch.Carbs = &updateCarbs
	}
	if flags.Changed("fat") {
		patch.Fat = &updateFat
	}
	if flags.Changed("fiber") {
		patch.Fiber = &updateFiber
	}
	return patch
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			found, err := st.Remove(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		})
	},
}

var entryDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Log a copy of an entry on today's date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			e, found, err := st.Duplicate(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s\n", e.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddCmd, entryListCmd, entryShowCmd, entryUpdateCmd, entryDeleteCmd, entryDuplicateCmd)

	entryAddCmd.Flags().StringVar(&entryTitle, "title", "", "Entry title")
	entryAddCmd.Flags().StringVar(&entryMeal, "meal", "", "Meal type: breakfast, lunch, dinner, or snack")
	entryAddCmd.Flags().StringVar(&entryPhoto, "photo", "", "Photo reference (path or data URL)")
	entryAddCmd.Flags().StringVar(&entryNotes, "notes", "", "Optional notes")
	entryAddCmd.Flags().StringVar(&entryDate, "date", "", "Date in YYYY-MM-DD (default today)")
	entryAddCmd.Flags().IntVar(&entryCalories, "calories", 0, "Calories")
	entryAddCmd.Flags().IntVar(&entryProtein, "protein", 0, "Protein grams")
	entryAddCmd.Flags().IntVar(&entryCarbs, "carbs", 0, "Carb grams")
	entryAddCmd.Flags().IntVar(&entryFat, "fat", 0, "Fat grams")
	entryAddCmd.Flags().IntVar(&entryFiber, "fiber", 0, "Fiber grams")
	entryAddCmd.Flags().StringVar(&entryEstimate, "estimate", "", "Prefill macros from a meal description or photo name")
	entryAddCmd.Flags().StringVar(&entryTemplate, "template", "", "Prefill macros from a saved template")

	entryListCmd.Flags().StringVar(&listDate, "date", "", "Date in YYYY-MM-DD (default today)")
	entryListCmd.Flags().IntVar(&listDays, "days", 1, "Include this many trailing days")
	entryListCmd.Flags().StringVar(&listMeal, "meal", "", "Filter by meal type")

	entryUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "Entry title")
	entryUpdateCmd.Flags().StringVar(&updateMeal, "meal", "", "Meal type: breakfast, lunch, dinner, or snack")
	entryUpdateCmd.Flags().StringVar(&updatePhoto, "photo", "", "Photo reference (path or data URL)")
	entryUpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "Optional notes")
	entryUpdateCmd.Flags().IntVar(&updateCalories, "calories", 0, "Calories")
	entryUpdateCmd.Flags().IntVar(&updateProtein, "protein", 0, "Protein grams")
	entryUpdateCmd.Flags().IntVar(&updateCarbs, "carbs", 0, "Carb grams")
	entryUpdateCmd.Flags().IntVar(&updateFat, "fat", 0, "Fat grams")
	entryUpdateCmd.Flags().IntVar(&updateFiber, "fiber", 0, "Fiber grams")
}

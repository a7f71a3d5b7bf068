package caltrack

import (
	"context"
	"fmt"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage reusable meal templates",
}

var (
	templateName     string
	templateTitle    string
	templateMeal     string
	templateNotes    string
	templateCalories int
	templateProtein  int
	templateCarbs    int
	templateFat      int
	templateFiber    int
)

var templateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a reusable meal template",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			tpl, err := st.SaveTemplate(ctx, model.Template{
				Name:     templateName,
				Title:    templateTitle,
				MealType: templateMeal,
				Notes:    templateNotes,
				Calories: templateCalories,
				Protein:  templateProtein,
				Carbs:    templateCarbs,
				Fat:      templateFat,
				Fiber:    templateFiber,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q\n", tpl.Name)
			return nil
		})
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tTITLE\tMEAL\tKCAL\tP\tC\tF\tFB")
			for _, tpl := range st.Templates() {
				meal := tpl.MealType
				if meal == "" {
					meal = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
					tpl.Name, tpl.Title, meal, tpl.Calories, tpl.Protein, tpl.Carbs, tpl.Fat, tpl.Fiber)
			}
			return nil
		})
	},
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			found, err := st.RemoveTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No template named %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed template %q\n", args[0])
			return nil
		})
	},
}

var templateLogDate string

var templateLogCmd = &cobra.Command{
	Use:   "log <name>",
	Short: "Log an entry from a saved template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDate(templateLogDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			if err := st.SetActiveDate(day); err != nil {
				return err
			}
			e, found, err := st.LogTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("template %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s\n", e.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateAddCmd, templateListCmd, templateRemoveCmd, templateLogCmd)

	templateAddCmd.Flags().StringVar(&templateName, "name", "", "Template name (the log/remove key)")
	templateAddCmd.Flags().StringVar(&templateTitle, "title", "", "Entry title (default the template name)")
	templateAddCmd.Flags().StringVar(&templateMeal, "meal", "", "Meal type: breakfast, lunch, dinner, or snack")
	templateAddCmd.Flags().StringVar(&templateNotes, "notes", "", "Optional notes")
	templateAddCmd.Flags().IntVar(&templateCalories, "calories", 0, "Calories")
	templateAddCmd.Flags().IntVar(&templateProtein, "protein", 0, "Protein grams")
	templateAddCmd.Flags().IntVar(&templateCarbs, "carbs", 0, "Carb grams")
	templateAddCmd.Flags().IntVar(&templateFat, "fat", 0, "Fat grams")
	templateAddCmd.Flags().IntVar(&templateFiber, "fiber", 0, "Fiber grams")
	_ = templateAddCmd.MarkFlagRequired("name")

	templateLogCmd.Flags().StringVar(&templateLogDate, "date", "", "Date in YYYY-MM-DD (default today)")
}

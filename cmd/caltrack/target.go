package caltrack

import (
	"context"
	"fmt"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage daily macro targets",
}

var targetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			printTarget(cmd, st.Target())
			return nil
		})
	},
}

var (
	targetKcal    int
	targetProtein int
	targetCarbs   int
	targetFat     int
	targetFiber   int
)

var targetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the daily target; only the flags you pass change",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := buildTargetPatch(cmd)
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			target, err := st.SetTarget(ctx, patch)
			if err != nil {
				return err
			}
			printTarget(cmd, target)
			return nil
		})
	},
}

func printTarget(cmd *cobra.Command, t model.Target) {
	fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %d kcal | P %dg | C %dg | F %dg | Fb %dg\n",
		t.Kcal, t.Protein, t.Carbs, t.Fat, t.Fiber)
}

func buildTargetPatch(cmd *cobra.Command) store.TargetPatch {
	flags := cmd.Flags()
	var patch store.TargetPatch
	if flags.Changed("kcal") {
		patch.Kcal = &targetKcal
	}
	if flags.Changed("protein") {
		patch.Protein = &targetProtein
	}
	if flags.Changed("carbs") {
		patch.Carbs = &targetCarbs
	}
	if flags.Changed("fat") {
		patch.Fat = &targetFat
	}
	if flags.Changed("fiber") {
		patch.Fiber = &targetFiber
	}
	return patch
}

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetShowCmd, targetSetCmd)

	targetSetCmd.Flags().IntVar(&targetKcal, "kcal", 0, "Daily calorie target")
	targetSetCmd.Flags().IntVar(&targetProtein, "protein", 0, "Daily protein grams")
	targetSetCmd.Flags().IntVar(&targetCarbs, "carbs", 0, "Daily carb grams")
	targetSetCmd.Flags().IntVar(&targetFat, "fat", 0, "Daily fat grams")
	targetSetCmd.Flags().IntVar(&targetFiber, "fiber", 0, "Daily fiber grams")
}

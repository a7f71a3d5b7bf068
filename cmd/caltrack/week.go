package caltrack

import (
	"context"
	"fmt"
	"time"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/summary"
	"github.com/spf13/cobra"
)

var weekDays int

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a rolling report over the trailing days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if weekDays < 1 {
			return fmt.Errorf("--days must be >= 1")
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			report := summary.Report(st.Entries(), time.Now(), weekDays)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Range: %s .. %s\n", report.From, report.To)
			fmt.Fprintf(out, "Days with entries: %d\n", report.DaysWithEntries)
			t := report.Totals
			fmt.Fprintf(out, "Total: %d kcal | P %dg | C %dg | F %dg | Fb %dg\n",
				t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber)
			fmt.Fprintf(out, "Avg: %d kcal/day\n", report.AvgCaloriesDay)
			for _, d := range report.Days {
				fmt.Fprintf(out, "%s  %d entries  %d kcal\n", d.Date, d.Entries, d.Totals.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().IntVar(&weekDays, "days", 7, "Window size in days, ending today")
}

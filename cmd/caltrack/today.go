package caltrack

import (
	"context"
	"fmt"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/summary"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a day's intake against the daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDate(todayDate)
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			entries := st.EntriesOn(day)
			totals := summary.TotalsFor(st.Entries(), day)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", day)
			fmt.Fprintf(out, "Entries: %d\n", len(entries))
			for _, row := range summary.Progress(totals, st.Target()) {
				if row.Target <= 0 {
					fmt.Fprintf(out, "%s: %d %s (no target)\n", row.Label, row.Consumed, row.Unit)
					continue
				}
				fmt.Fprintf(out, "%s: %d / %d %s (%d%%, %d remaining)\n",
					row.Label, row.Consumed, row.Target, row.Unit, row.Percent, row.Remaining)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date in YYYY-MM-DD (default today)")
}

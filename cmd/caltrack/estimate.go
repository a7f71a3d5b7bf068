package caltrack

import (
	"fmt"
	"strings"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/estimate"
	"github.com/spf13/cobra"
)

// estimator backs both the estimate command and entry add --estimate.
var estimator estimate.Estimator = estimate.NewStatic()

var estimateCmd = &cobra.Command{
	Use:   "estimate <hint>",
	Short: "Estimate nutrition from a meal description or photo name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := estimator.Estimate(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Label: %s\n", res.Label)
		fmt.Fprintf(out, "Calories: %d kcal | P %dg | C %dg | F %dg | Fb %dg\n",
			res.Calories, res.Protein, res.Carbs, res.Fat, res.Fiber)
		status := "unverified"
		if res.Verified {
			status = "verified"
		}
		fmt.Fprintf(out, "Confidence: %.2f (%s)\n", res.Confidence, status)
		for _, reason := range res.Reasons {
			fmt.Fprintf(out, "  %s\n", reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

package caltrack

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportOut string
	importIn  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the entry log as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := strings.TrimSpace(exportOut)
		if out == "" {
			out = fmt.Sprintf("caltrack-%s.json", dates.Today(time.Now()))
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			b, err := st.ExportJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(st.Entries()), out)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the entry log with a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			raw, err := os.ReadFile(importIn)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			n, err := st.ImportJSON(ctx, raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", n, importIn)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (default caltrack-YYYY-MM-DD.json)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
}

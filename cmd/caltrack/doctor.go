package caltrack

import (
	"fmt"
	"strings"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/app"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/db"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/kv"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	// Reads the raw documents instead of opening the store, so pending
	// migrations and repairs are reported rather than applied.
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := app.EnsureStoreDir(path); err != nil {
			return err
		}
		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(cmd.Context(), sqldb); err != nil {
			return err
		}
		report, err := store.RunDoctor(cmd.Context(), kv.NewSQLite(sqldb))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Store: %s\n", path)
		keys := "(none)"
		if len(report.Keys) > 0 {
			keys = strings.Join(report.Keys, ", ")
		}
		fmt.Fprintf(out, "Keys: %s\n", keys)
		fmt.Fprintf(out, "Entries: %d\n", report.Entries)
		fmt.Fprintf(out, "Invalid entries: %d\n", report.InvalidEntries)
		fmt.Fprintf(out, "Duplicate ids: %d\n", report.DuplicateIDs)
		fmt.Fprintf(out, "Templates: %d\n", report.Templates)
		if report.TargetSet {
			fmt.Fprintln(out, "Target: set")
		} else {
			fmt.Fprintln(out, "Target: default")
		}
		if report.LegacyLog {
			fmt.Fprintln(out, "Legacy entry log present; the next command migrates it")
		}
		if report.StaleLegacy {
			fmt.Fprintln(out, "Stale legacy entry log present; the next command removes it")
		}
		for _, key := range report.CorruptDocs {
			fmt.Fprintf(out, "Corrupt document: %s\n", key)
		}

		if report.InvalidEntries > 0 || report.DuplicateIDs > 0 || len(report.CorruptDocs) > 0 {
			return fmt.Errorf("doctor found integrity issues")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

package caltrack

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/app"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/dates"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/db"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/kv"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/model"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/store"
	"github.com/spf13/cobra"
)

func withStore(cmd *cobra.Command, run func(ctx context.Context, st *store.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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

	if err := db.ApplyMigrations(ctx, sqldb); err != nil {
		return err
	}
	st, err := store.Open(ctx, kv.NewSQLite(sqldb), store.Options{Logger: slog.Default()})
	if err != nil {
		return err
	}
	return run(ctx, st)
}

// resolveDate canonicalizes a --date flag value. Empty means today;
// "yesterday" and "tomorrow" are accepted as shorthands.
func resolveDate(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	today := dates.Today(time.Now())
	switch value {
	case "", "today":
		return today, nil
	case "yesterday":
		return dates.PreviousDay(today)
	case "tomorrow":
		return dates.NextDay(today)
	}
	if !dates.Valid(value) {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

func printEntryRow(cmd *cobra.Command, e model.Entry) {
	meal := e.MealType
	if meal == "" {
		meal = "-"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
		e.ID, e.Date, e.Time, meal, e.Title, e.Calories, e.Protein, e.Carbs, e.Fat, e.Fiber)
}

const entryRowHeader = "ID\tDATE\tTIME\tMEAL\tTITLE\tKCAL\tP\tC\tF\tFB"

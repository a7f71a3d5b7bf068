package caltrack

import (
	"fmt"
	"os"

	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/app"
	"github.com/pranavjandialfit-cloud/calorie-tracker/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local caltrack store",
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

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized caltrack store at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	if env := os.Getenv(app.StorePathEnv); env != "" {
		return env, nil
	}
	return app.DefaultStorePath()
}

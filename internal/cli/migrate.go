package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/app"
	"github.com/pkordes/travel-planner/backend/internal/config"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the trips and feedback tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	})
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	u, err := config.LoadDatabaseURL()
	if err != nil {
		return err
	}
	pool, err := app.OpenPool(cmd.Context(), u)
	if err != nil {
		return err
	}
	pool.Close()

	if formatFlag == formatJSON {
		return printJSON(cmd.OutOrStdout(), map[string]string{"status": "ok"})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
	return err
}

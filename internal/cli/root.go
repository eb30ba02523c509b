// Package cli implements the planner command-line client: it shares the
// API server's services but talks to the store and the generator directly.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/app"
	"github.com/pkordes/travel-planner/backend/internal/config"
	"github.com/pkordes/travel-planner/backend/internal/repo"
	"github.com/pkordes/travel-planner/backend/internal/service"
)

const (
	formatJSON = "json"
	formatText = "text"
)

var (
	dbURL      string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "AI travel planner",
	Long:          "Plan trips with Gemini, enriched with the current weather, and browse the plans saved in Postgres.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if formatFlag != formatJSON && formatFlag != formatText {
			return fmt.Errorf("unknown --format %q: want json or text", formatFlag)
		}
		// godotenv never overrides a variable that is already set, so the
		// flag wins over both the environment and .env.
		if dbURL != "" {
			return os.Setenv("DATABASE_URL", dbURL)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbURL, "db", "d", "", "Postgres connection string (default: $DATABASE_URL)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", formatText, "Output format: json or text")
}

// Execute runs RootCmd and reports any error on stderr.
func Execute(ctx context.Context) int {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// openTrips connects to the store only; no API keys are needed.
func openTrips(ctx context.Context) (*service.TripService, func(), error) {
	u, err := config.LoadDatabaseURL()
	if err != nil {
		return nil, nil, err
	}
	pool, err := app.OpenPool(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return service.NewTripService(repo.NewTripRepo(pool)), pool.Close, nil
}

// openApp builds the full dependency set. Logs go to stderr so stdout
// carries only command output.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return app.New(cmd.Context(), cfg, log)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

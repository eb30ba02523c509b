package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/handler"
)

const dateLayout = "2006-01-02"

func init() {
	tripsCmd := &cobra.Command{
		Use:   "trips",
		Short: "Browse saved trips",
	}
	tripsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every saved trip in insertion order",
		Args:  cobra.NoArgs,
		RunE:  runTripsList,
	})
	tripsCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved trip",
		Args:  cobra.ExactArgs(1),
		RunE:  runTripsShow,
	})
	RootCmd.AddCommand(tripsCmd)
}

func runTripsList(cmd *cobra.Command, _ []string) error {
	svc, closeFn, err := openTrips(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	trips, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}
	return writeTrips(cmd.OutOrStdout(), formatFlag, trips)
}

func runTripsShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid trip id %q", args[0])
	}

	svc, closeFn, err := openTrips(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	trip, err := svc.GetByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	if formatFlag == formatJSON {
		return printJSON(cmd.OutOrStdout(), handler.NewTrip(trip))
	}
	return writeTripText(cmd.OutOrStdout(), trip)
}

// writeTrips renders trips for the list command. An empty store prints a
// notice in text mode and [] in JSON mode.
func writeTrips(w io.Writer, format string, trips []domain.Trip) error {
	if format == formatJSON {
		out := make([]handler.Trip, len(trips))
		for i, t := range trips {
			out[i] = handler.NewTrip(t)
		}
		return printJSON(w, out)
	}
	if len(trips) == 0 {
		_, err := fmt.Fprintln(w, "No saved trips found.")
		return err
	}
	for i, t := range trips {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeTripText(w, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTripText(w io.Writer, t domain.Trip) error {
	_, err := fmt.Fprintf(w,
		"Trip to %s (#%d)\nDates: %s to %s\nActivities: %s\nAccommodation: %s\nPlan Details: %s\n",
		t.Destination, t.ID,
		t.DepartureDate.Format(dateLayout), t.ReturnDate.Format(dateLayout),
		t.Activities, t.Accommodation, t.PlanDetails,
	)
	return err
}

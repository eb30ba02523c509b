package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/handler"
	"github.com/pkordes/travel-planner/backend/internal/llm"
)

type planner interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error)
}

type planFlags struct {
	destination   string
	depart        string
	ret           string
	activities    string
	accommodation string
}

func init() {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a trip plan and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return runPlan(cmd.Context(), cmd.OutOrStdout(), a.Plans, req, formatFlag)
		},
	}

	cmd.Flags().StringVar(&f.destination, "destination", "", "Where to go")
	cmd.Flags().StringVar(&f.depart, "depart", "", "Departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.ret, "return", "", "Return date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.activities, "activities", "", "Activities you're interested in")
	cmd.Flags().StringVar(&f.accommodation, "accommodation", string(domain.AccommodationHotel), "Hotel, Hostel, Apartment or Other")

	RootCmd.AddCommand(cmd)
}

// request parses the flags. Both dates are required; their order is not
// checked.
func (f planFlags) request() (domain.PlanRequest, error) {
	if f.depart == "" || f.ret == "" {
		return domain.PlanRequest{}, errors.New("--depart and --return are required")
	}
	depart, err := time.Parse(dateLayout, f.depart)
	if err != nil {
		return domain.PlanRequest{}, fmt.Errorf("--depart: want YYYY-MM-DD, got %q", f.depart)
	}
	ret, err := time.Parse(dateLayout, f.ret)
	if err != nil {
		return domain.PlanRequest{}, fmt.Errorf("--return: want YYYY-MM-DD, got %q", f.ret)
	}
	return domain.PlanRequest{
		Destination:   f.destination,
		DepartureDate: depart,
		ReturnDate:    ret,
		Activities:    f.activities,
		Accommodation: f.accommodation,
	}, nil
}

func runPlan(ctx context.Context, w io.Writer, p planner, req domain.PlanRequest, format string) error {
	res, err := p.Plan(ctx, req)
	if err != nil {
		return err
	}

	if format == formatJSON {
		return printJSON(w, handler.PlanResponse{Trip: handler.NewTrip(res.Trip), Weather: res.Weather})
	}

	if res.Weather != nil {
		if _, err := fmt.Fprintln(w, llm.WeatherSummary(*res.Weather)); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, "Weather unavailable; planned without it."); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s\n\nTrip saved successfully! (#%d)\n", res.Trip.PlanDetails, res.Trip.ID)
	return err
}

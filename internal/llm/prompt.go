package llm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

const planTemplate = `
You are an expert at planning overseas trips.

Please take the users request and plan a comprehensive trip for them.

Please include the following details:
- The destination
- The duration of the trip
- The departure and return dates
- The flight options
- The activities that will be done
- The accommodation options

The user's request is:
%s
`

const chatTemplate = `
You are a friendly travel assistant.

Answer the traveller's question below. Keep the answer practical and concise,
and say so when the answer depends on dates, season, or local rules that may
have changed.

The traveller asks:
%s
`

// dateLayout matches how the request dates are written into the prompt.
const dateLayout = "2006-01-02"

// PlanPrompt builds the full plan-generation prompt for req.
// The weather sentence is included only when w is non-nil.
func PlanPrompt(req domain.PlanRequest, w *domain.Weather) string {
	parts := []string{
		"Destination: " + req.Destination,
		"Departure Date: " + req.DepartureDate.Format(dateLayout),
		"Return Date: " + req.ReturnDate.Format(dateLayout),
		"Activities: " + req.Activities,
		"Accommodation: " + req.Accommodation,
	}
	if w != nil {
		parts = append(parts, WeatherSummary(*w))
	}
	return fmt.Sprintf(planTemplate, strings.Join(parts, ", "))
}

// WeatherSummary renders w as the one-line sentence used in plan prompts.
func WeatherSummary(w domain.Weather) string {
	return fmt.Sprintf("Weather during your trip: %s °C, %s, Humidity: %d%%",
		strconv.FormatFloat(w.TemperatureCelsius, 'f', -1, 64), w.Description, w.HumidityPercent)
}

// ChatPrompt wraps a raw sidebar question in the fixed chat instructions.
func ChatPrompt(query string) string {
	return fmt.Sprintf(chatTemplate, query)
}

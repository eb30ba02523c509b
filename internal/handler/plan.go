package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// dateLayout is the calendar-date format used on the wire.
const dateLayout = openapi_types.DateFormat

// CreatePlanRequest is the body of POST /plans.
type CreatePlanRequest struct {
	Destination   string              `json:"destination"`
	DepartureDate *openapi_types.Date `json:"departure_date"`
	ReturnDate    *openapi_types.Date `json:"return_date"`
	Activities    string              `json:"activities"`
	Accommodation string              `json:"accommodation"`
}

// PlanResponse is the body of a successful POST /plans.
// Weather is omitted when the weather service had nothing for the destination.
type PlanResponse struct {
	Trip    Trip            `json:"trip"`
	Weather *domain.Weather `json:"weather,omitempty"`
}

// CreatePlan handles POST /plans: generate a plan for the request and save it.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var body CreatePlanRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	req, msg := requestToPlan(body)
	if msg != "" {
		badRequest(w, msg)
		return
	}

	result, err := s.plans.Plan(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, PlanResponse{
		Trip:    NewTrip(result.Trip),
		Weather: result.Weather,
	})
}

// requestToPlan converts the request body into a domain.PlanRequest.
// Only the dates are required; text fields may be empty.
// Returns a non-empty message when the body cannot be used.
func requestToPlan(body CreatePlanRequest) (domain.PlanRequest, string) {
	if body.DepartureDate == nil {
		return domain.PlanRequest{}, "departure_date is required"
	}
	if body.ReturnDate == nil {
		return domain.PlanRequest{}, "return_date is required"
	}
	return domain.PlanRequest{
		Destination:   body.Destination,
		DepartureDate: body.DepartureDate.Time,
		ReturnDate:    body.ReturnDate.Time,
		Activities:    body.Activities,
		Accommodation: body.Accommodation,
	}, ""
}

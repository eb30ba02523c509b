package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Trip is the JSON representation of a saved trip.
type Trip struct {
	ID            int64              `json:"id"`
	Destination   string             `json:"destination"`
	DepartureDate openapi_types.Date `json:"departure_date"`
	ReturnDate    openapi_types.Date `json:"return_date"`
	Activities    string             `json:"activities"`
	Accommodation string             `json:"accommodation"`
	PlanDetails   string             `json:"plan_details"`
}

// ListTrips handles GET /trips.
// Returns every saved trip in insertion order as {"data": [...]}; an empty
// store gives an empty array. ?format=csv returns the same rows as CSV.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeTripsCSV(w, trips)
		return
	}

	data := make([]Trip, len(trips))
	for i, t := range trips {
		data[i] = NewTrip(t)
	}
	writeJSON(w, http.StatusOK, dataResponse[Trip]{Data: data})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, NewTrip(trip))
}

// ListAccommodations handles GET /accommodations: the preference labels a
// client should offer. Other values are still accepted by POST /plans.
func (s *Server) ListAccommodations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dataResponse[domain.Accommodation]{Data: domain.Accommodations()})
}

// NewTrip converts a domain.Trip into its JSON shape, with calendar dates
// rendered as YYYY-MM-DD. The CLI prints the same shape.
func NewTrip(t domain.Trip) Trip {
	return Trip{
		ID:            t.ID,
		Destination:   t.Destination,
		DepartureDate: openapi_types.Date{Time: t.DepartureDate},
		ReturnDate:    openapi_types.Date{Time: t.ReturnDate},
		Activities:    t.Activities,
		Accommodation: t.Accommodation,
		PlanDetails:   t.PlanDetails,
	}
}

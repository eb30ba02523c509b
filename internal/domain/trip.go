// Package domain contains the core data types for the travel planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, cli).
package domain

import "time"

// Trip is a persisted travel plan: what the traveller asked for plus the
// generated plan narrative. Trips are created once and never modified.
//
// DepartureDate and ReturnDate are calendar dates; no ordering between them
// is enforced anywhere.
type Trip struct {
	ID            int64     `json:"id"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	Activities    string    `json:"activities"`
	Accommodation string    `json:"accommodation"`
	PlanDetails   string    `json:"plan_details"`
}

// Accommodation is a lodging preference label.
// The store keeps it as free text, so values outside this set are accepted.
type Accommodation string

const (
	AccommodationHotel     Accommodation = "Hotel"
	AccommodationHostel    Accommodation = "Hostel"
	AccommodationApartment Accommodation = "Apartment"
	AccommodationOther     Accommodation = "Other"
)

// Accommodations returns the preference labels offered to users, in display order.
func Accommodations() []Accommodation {
	return []Accommodation{
		AccommodationHotel,
		AccommodationHostel,
		AccommodationApartment,
		AccommodationOther,
	}
}

// PlanRequest is the traveller's input for generating a new trip plan.
type PlanRequest struct {
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Activities    string
	Accommodation string
}

// PlanResult is the outcome of a successful plan request.
// Weather is nil when no weather data could be retrieved.
type PlanResult struct {
	Trip    Trip
	Weather *Weather
}

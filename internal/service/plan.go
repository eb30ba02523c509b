package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/llm"
	"github.com/pkordes/travel-planner/backend/internal/repo"
)

// WeatherFetcher looks up current conditions at a destination.
// Any error means "no weather data"; it never aborts planning.
type WeatherFetcher interface {
	Current(ctx context.Context, destination string) (domain.Weather, error)
}

// Generator produces text from a prompt. Implemented by llm.GeminiClient and
// llm.MockGenerator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, query string) (string, error)
}

// PlanService turns a travel request into a saved trip plan.
type PlanService struct {
	trips   repo.TripRepo
	weather WeatherFetcher
	gen     Generator
	log     *slog.Logger
}

// NewPlanService constructs a PlanService. weather may be nil, in which case
// plans are always generated without weather context.
func NewPlanService(trips repo.TripRepo, weather WeatherFetcher, gen Generator, log *slog.Logger) *PlanService {
	return &PlanService{trips: trips, weather: weather, gen: gen, log: log}
}

// Plan fetches weather for the destination, generates a plan, and stores it.
//
// A weather failure is logged and planning continues without it. A generation
// failure aborts before anything is written. Dates are passed through as
// given; a return date before the departure date is accepted.
func (s *PlanService) Plan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error) {
	weather := s.lookupWeather(ctx, req.Destination)

	reply, err := s.gen.Generate(ctx, llm.PlanPrompt(req, weather))
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("service.PlanService.Plan: %w", err)
	}

	trip, err := s.trips.Create(ctx, domain.Trip{
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Activities:    req.Activities,
		Accommodation: req.Accommodation,
		PlanDetails:   reply,
	})
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("service.PlanService.Plan: %w", err)
	}

	s.log.InfoContext(ctx, "trip saved",
		"trip_id", trip.ID,
		"destination", trip.Destination,
		"with_weather", weather != nil,
	)
	return domain.PlanResult{Trip: trip, Weather: weather}, nil
}

func (s *PlanService) lookupWeather(ctx context.Context, destination string) *domain.Weather {
	if s.weather == nil {
		return nil
	}
	w, err := s.weather.Current(ctx, destination)
	if err != nil {
		s.log.WarnContext(ctx, "planning without weather", "destination", destination, "error", err)
		return nil
	}
	return &w
}

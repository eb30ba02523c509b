// Package handler implements the HTTP API for the travel planner.
// All handlers are methods on Server. They are split into resource-specific
// files (health.go, plan.go, trip.go, session.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

// TripServicer defines the trip read operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
}

// PlanServicer generates and saves a new trip plan.
type PlanServicer interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error)
}

// ChatServicer answers a sidebar question and records it in a session log.
type ChatServicer interface {
	Ask(ctx context.Context, log *session.ChatLog, query string) (domain.ChatTurn, error)
}

// SessionStore tracks live interactive sessions.
type SessionStore interface {
	Start() *session.Session
	Get(id uuid.UUID) (*session.Session, error)
	End(id uuid.UUID) error
}

// Deps are the collaborators a Server needs. Fields left nil are only safe
// when the routes that use them are not exercised (e.g. health-only tests).
type Deps struct {
	Trips    TripServicer
	Plans    PlanServicer
	Chat     ChatServicer
	Sessions SessionStore
	Logger   *slog.Logger
}

// Server implements every API endpoint.
type Server struct {
	trips    TripServicer
	plans    PlanServicer
	chat     ChatServicer
	sessions SessionStore
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:    d.Trips,
		plans:    d.Plans,
		chat:     d.Chat,
		sessions: d.Sessions,
		log:      log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Deps{})
}

// Routes returns a chi router serving every endpoint.
// Middleware is applied by the caller (see cmd/api).
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/accommodations", s.ListAccommodations)

	r.Post("/plans", s.CreatePlan)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Get("/{id}", s.GetTrip)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.StartSession)
		r.Delete("/{id}", s.EndSession)
		r.Get("/{id}/turns", s.ListTurns)
		r.Post("/{id}/turns", s.AskQuestion)
	})

	return r
}

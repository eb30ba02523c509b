// Package repo contains all database access logic for the travel planner.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Every repo call opens its own transaction from it. In production that is a
// real transaction on a pooled connection; in tests a pgx.Tx is passed, and
// Begin on it creates a savepoint, so the outer test transaction can still be
// rolled back for per-test isolation.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
// Trips are insert-only: there is no update or delete.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record with its
	// DB-assigned id. Either the whole row is written or nothing is.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns every trip in insertion order.
	// An empty table yields an empty result and a nil error.
	List(ctx context.Context) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db beginner
}

// NewTripRepo constructs a TripRepo backed by the provided connection source.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db beginner) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row inside its own transaction.
// pgx.BeginFunc commits when the callback returns nil and rolls back otherwise.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, departure_date, return_date, activities, accommodation, plan_details)
		VALUES (@destination, @departure_date, @return_date, @activities, @accommodation, @plan_details)
		RETURNING id, destination, departure_date, return_date, activities, accommodation, plan_details`

	args := pgx.NamedArgs{
		"destination":    trip.Destination,
		"departure_date": pgtype.Date{Time: trip.DepartureDate, Valid: true},
		"return_date":    pgtype.Date{Time: trip.ReturnDate, Valid: true},
		"activities":     trip.Activities,
		"accommodation":  trip.Accommodation,
		"plan_details":   trip.PlanDetails,
	}

	var result domain.Trip
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanTrip(tx.QueryRow(ctx, q, args))
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	const q = `
		SELECT id, destination, departure_date, return_date, activities, accommodation, plan_details
		FROM trips
		WHERE id = @id`

	var result domain.Trip
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		result, err = scanTrip(tx.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by id, which is insertion order.
// Rows are read fully before the transaction ends; nothing is streamed lazily.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT id, destination, departure_date, return_date, activities, accommodation, plan_details
		FROM trips
		ORDER BY id`

	trips := []domain.Trip{}
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			t, err := scanTrip(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			trips = append(trips, t)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// Columns are nullable in the schema (the DDL predates this service), so
// text columns are scanned through pgtype.Text and NULL becomes "".
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t                                      domain.Trip
		destination, activities, accommodation pgtype.Text
		planDetails                            pgtype.Text
		departure, ret                         pgtype.Date
	)

	err := s.Scan(&t.ID, &destination, &departure, &ret, &activities, &accommodation, &planDetails)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.Destination = destination.String
	t.DepartureDate = departure.Time
	t.ReturnDate = ret.Time
	t.Activities = activities.String
	t.Accommodation = accommodation.String
	t.PlanDetails = planDetails.String
	return t, nil
}

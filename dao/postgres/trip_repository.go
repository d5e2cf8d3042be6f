package postgres

import (
	"context"
	"errors"
	"fmt"

	"partypilot/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TripRepository handles persistence for trips and their events.
type TripRepository struct {
	db *pgxpool.Pool
}

// NewTripRepository constructs a TripRepository.
func NewTripRepository(db *pgxpool.Pool) *TripRepository {
	return &TripRepository{db: db}
}

// SaveTripPlan inserts the trip and all of its events in one transaction, so
// a planning request is persisted atomically or not at all.
func (r *TripRepository) SaveTripPlan(ctx context.Context, trip models.Trip, events []models.Event) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO trips (id, prompt, city, occasion, budget_level, date_start, date_end,
		                    group_size_min, group_size_max, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		trip.TripID, trip.Prompt, trip.City, trip.Occasion, trip.BudgetLevel,
		trip.DateStart, trip.DateEnd, trip.GroupSizeMin, trip.GroupSizeMax, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}

	for _, e := range events {
		_, err = tx.Exec(ctx,
			`INSERT INTO events (id, trip_id, order_index, type, title, start_time, end_time,
			                     venue_id, backup_venue_ids)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`,
			e.EventID, e.TripID, e.OrderIndex, e.Type, e.Title, e.StartTime, e.EndTime,
			e.VenueID, e.BackupVenueIDs,
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", e.OrderIndex, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List returns all trips ordered by creation time descending.
func (r *TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, prompt, city, occasion, budget_level, date_start, date_end,
		        group_size_min, group_size_max, created_at
		 FROM trips
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.TripID, &t.Prompt, &t.City, &t.Occasion, &t.BudgetLevel,
			&t.DateStart, &t.DateEnd, &t.GroupSizeMin, &t.GroupSizeMax, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// GetWithEvents returns a trip plus its events in slot order, or ErrNotFound.
func (r *TripRepository) GetWithEvents(ctx context.Context, tripID string) (*models.TripWithEvents, error) {
	var t models.Trip
	err := r.db.QueryRow(ctx,
		`SELECT id, prompt, city, occasion, budget_level, date_start, date_end,
		        group_size_min, group_size_max, created_at
		 FROM trips WHERE id = $1`,
		tripID,
	).Scan(&t.TripID, &t.Prompt, &t.City, &t.Occasion, &t.BudgetLevel,
		&t.DateStart, &t.DateEnd, &t.GroupSizeMin, &t.GroupSizeMax, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, trip_id, order_index, type, title, start_time, end_time,
		        COALESCE(venue_id, ''), backup_venue_ids
		 FROM events
		 WHERE trip_id = $1
		 ORDER BY order_index ASC`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("list trip events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.EventID, &e.TripID, &e.OrderIndex, &e.Type, &e.Title,
			&e.StartTime, &e.EndTime, &e.VenueID, &e.BackupVenueIDs); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.TripWithEvents{Trip: t, Events: events}, nil
}

// Delete removes a trip and its events, or returns ErrNotFound.
func (r *TripRepository) Delete(ctx context.Context, tripID string) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM events WHERE trip_id = $1`, tripID); err != nil {
		return fmt.Errorf("delete trip events: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

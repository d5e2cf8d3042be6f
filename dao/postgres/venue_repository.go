package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partypilot/models/venue"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// VenueRepository handles persistence for venues.
type VenueRepository struct {
	db *pgxpool.Pool
}

// NewVenueRepository constructs a VenueRepository.
func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{db: db}
}

const venueColumns = `id, name, address, city, price_level, group_friendly, dress_code_summary, rating, tags, created_at`

// Create inserts a new venue and returns it with a generated UUID.
func (r *VenueRepository) Create(ctx context.Context, v venue.Venue) (*venue.Venue, error) {
	v.VenueID = uuid.New().String()
	v.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO venues (`+venueColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.VenueID, v.VenueName, v.VenueAddress, v.City, v.PriceLevel,
		v.GroupFriendly, v.DressCodeSummary, v.Rating, v.Tags, v.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}
	return &v, nil
}

// ListByCity returns all venues for a city in insertion order. Insertion
// order matters: the matcher's tie-break relies on it.
func (r *VenueRepository) ListByCity(ctx context.Context, city string) ([]venue.Venue, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+venueColumns+`
		 FROM venues
		 WHERE LOWER(city) = LOWER($1)
		 ORDER BY created_at ASC, id ASC`,
		city,
	)
	if err != nil {
		return nil, fmt.Errorf("list venues by city: %w", err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

// List returns all venues ordered by creation time.
func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+venueColumns+` FROM venues ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

// GetByID returns a single venue or ErrNotFound.
func (r *VenueRepository) GetByID(ctx context.Context, id string) (*venue.Venue, error) {
	var v venue.Venue
	err := r.db.QueryRow(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE id = $1`, id,
	).Scan(&v.VenueID, &v.VenueName, &v.VenueAddress, &v.City, &v.PriceLevel,
		&v.GroupFriendly, &v.DressCodeSummary, &v.Rating, &v.Tags, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

// Update overwrites a venue's mutable attributes.
func (r *VenueRepository) Update(ctx context.Context, v venue.Venue) (*venue.Venue, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE venues
		 SET name = $2, address = $3, city = $4, price_level = $5,
		     group_friendly = $6, dress_code_summary = $7, rating = $8, tags = $9
		 WHERE id = $1`,
		v.VenueID, v.VenueName, v.VenueAddress, v.City, v.PriceLevel,
		v.GroupFriendly, v.DressCodeSummary, v.Rating, v.Tags,
	)
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, v.VenueID)
}

// Delete removes a venue or returns ErrNotFound.
func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCities returns the distinct set of cities with at least one venue.
func (r *VenueRepository) ListCities(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT city FROM venues ORDER BY city ASC`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// Count returns the total number of venues. Used by the seeding step.
func (r *VenueRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	return n, nil
}

func scanVenues(rows pgx.Rows) ([]venue.Venue, error) {
	var venues []venue.Venue
	for rows.Next() {
		var v venue.Venue
		if err := rows.Scan(&v.VenueID, &v.VenueName, &v.VenueAddress, &v.City, &v.PriceLevel,
			&v.GroupFriendly, &v.DressCodeSummary, &v.Rating, &v.Tags, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

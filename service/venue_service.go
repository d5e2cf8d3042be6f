package services

import (
	"context"
	"log"

	"partypilot/dao/postgres"
	redisdao "partypilot/dao/redis"
	"partypilot/models"
	"partypilot/models/venue"
)

// VenueService wraps venue CRUD and keeps the Redis pools consistent with
// Postgres by invalidating a city's pool on every write touching it.
type VenueService struct {
	venueRepo *postgres.VenueRepository
	cache     *redisdao.RedisVenueCache
}

// NewVenueService constructs a new VenueService.
func NewVenueService(venueRepo *postgres.VenueRepository, cache *redisdao.RedisVenueCache) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		cache:     cache,
	}
}

// CreateVenue persists a venue and invalidates its city pool.
func (vs *VenueService) CreateVenue(ctx context.Context, v venue.Venue) (*venue.Venue, error) {
	created, err := vs.venueRepo.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	vs.invalidate(created.City)
	return created, nil
}

// ListVenues returns venues matching the list params. City narrows the query;
// the remaining filters are applied in memory.
func (vs *VenueService) ListVenues(ctx context.Context, params models.VenueListParams) ([]venue.Venue, error) {
	var pool []venue.Venue
	var err error
	if params.City != "" {
		pool, err = vs.venueRepo.ListByCity(ctx, params.City)
	} else {
		pool, err = vs.venueRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]venue.Venue, 0, len(pool))
	for _, v := range pool {
		if params.Matches(v.PriceLevel, v.GroupFriendly, v.Rating, v.Tags) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// GetVenue returns one venue or postgres.ErrNotFound.
func (vs *VenueService) GetVenue(ctx context.Context, id string) (*venue.Venue, error) {
	return vs.venueRepo.GetByID(ctx, id)
}

// UpdateVenue overwrites a venue and invalidates both the old and new city
// pools in case the venue moved.
func (vs *VenueService) UpdateVenue(ctx context.Context, v venue.Venue) (*venue.Venue, error) {
	existing, err := vs.venueRepo.GetByID(ctx, v.VenueID)
	if err != nil {
		return nil, err
	}

	updated, err := vs.venueRepo.Update(ctx, v)
	if err != nil {
		return nil, err
	}

	vs.invalidate(existing.City)
	if updated.City != existing.City {
		vs.invalidate(updated.City)
	}
	return updated, nil
}

// DeleteVenue removes a venue and invalidates its city pool.
func (vs *VenueService) DeleteVenue(ctx context.Context, id string) error {
	existing, err := vs.venueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := vs.venueRepo.Delete(ctx, id); err != nil {
		return err
	}
	vs.invalidate(existing.City)
	return nil
}

func (vs *VenueService) invalidate(city string) {
	if err := vs.cache.InvalidateCity(city); err != nil {
		log.Printf("[VenueService] cache invalidation failed for %q: %v", city, err)
	}
}

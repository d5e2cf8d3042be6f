package services

import (
	"context"
	"log"

	redisdao "partypilot/dao/redis"
	"partypilot/models/venue"
)

// VenueLister is the slice of the venue repository the source needs.
type VenueLister interface {
	ListByCity(ctx context.Context, city string) ([]venue.Venue, error)
}

// CachedVenueSource serves the matcher's city pools from Redis, falling
// through to Postgres on a miss and writing the pool back.
type CachedVenueSource struct {
	cache *redisdao.RedisVenueCache
	repo  VenueLister
}

// NewCachedVenueSource constructs a CachedVenueSource.
func NewCachedVenueSource(cache *redisdao.RedisVenueCache, repo VenueLister) *CachedVenueSource {
	return &CachedVenueSource{cache: cache, repo: repo}
}

// FetchVenuesByCity implements matcher.VenueSource. Cache read errors are
// treated as misses; repository errors propagate to the caller.
func (s *CachedVenueSource) FetchVenuesByCity(ctx context.Context, city string) ([]venue.Venue, error) {
	pool, hit, err := s.cache.GetCityPool(city)
	if err != nil {
		log.Printf("[CachedVenueSource] cache read failed for %q, falling through: %v", city, err)
	} else if hit {
		return pool, nil
	}

	pool, err = s.repo.ListByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCityPool(city, pool); err != nil {
		log.Printf("[CachedVenueSource] cache write failed for %q: %v", city, err)
	}
	return pool, nil
}

package services

import (
	"context"
	"log"
	"time"

	"partypilot/dao/postgres"
	redisdao "partypilot/dao/redis"
	"partypilot/util"
)

// VenueCacheWarmerService preloads the per-city venue pools into Redis at
// boot and on a periodic schedule, and seeds Postgres from the bundled
// resource when the venues table is empty.
type VenueCacheWarmerService struct {
	venueRepo *postgres.VenueRepository
	cache     *redisdao.RedisVenueCache
	seedPath  string
}

// NewVenueCacheWarmerService constructs a new warmer with dependencies.
func NewVenueCacheWarmerService(
	venueRepo *postgres.VenueRepository,
	cache *redisdao.RedisVenueCache,
	seedPath string,
) *VenueCacheWarmerService {
	return &VenueCacheWarmerService{
		venueRepo: venueRepo,
		cache:     cache,
		seedPath:  seedPath,
	}
}

// StartPeriodicJob launches the background warm loop at the given interval.
func (vw *VenueCacheWarmerService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go vw.startPeriodicJob(ctx, interval)
}

func (vw *VenueCacheWarmerService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[VenueCacheWarmerService] Stopping periodic warm job.")
			return
		case <-ticker.C:
			log.Println("[VenueCacheWarmerService] Running periodic venue pool warm job.")
			if err := vw.WarmAllCities(ctx); err != nil {
				log.Printf("[VenueCacheWarmerService] WarmAllCities returned error: %v", err)
			} else {
				log.Println("[VenueCacheWarmerService] WarmAllCities completed successfully.")
			}
		}
	}
}

// SeedIfEmpty loads the bundled venue seed into Postgres when the table is
// empty, so a fresh install has pools to match against.
func (vw *VenueCacheWarmerService) SeedIfEmpty(ctx context.Context) error {
	count, err := vw.venueRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[VenueCacheWarmerService] Venues table has %d rows, skipping seed.", count)
		return nil
	}

	seed, err := util.ReadVenueSeedFromJSON(vw.seedPath)
	if err != nil {
		return err
	}

	log.Printf("[VenueCacheWarmerService] Seeding %d venues from %s", len(seed), vw.seedPath)
	for _, v := range seed {
		if _, err := vw.venueRepo.Create(ctx, v); err != nil {
			log.Printf("[VenueCacheWarmerService] Seed insert failed for %q: %v", v.VenueName, err)
		}
	}
	return nil
}

// WarmAllCities rebuilds every city pool in Redis from Postgres.
func (vw *VenueCacheWarmerService) WarmAllCities(ctx context.Context) error {
	cities, err := vw.venueRepo.ListCities(ctx)
	if err != nil {
		return err
	}

	log.Printf("[VenueCacheWarmerService] Warming venue pools for %d cities", len(cities))
	for _, city := range cities {
		pool, err := vw.venueRepo.ListByCity(ctx, city)
		if err != nil {
			log.Printf("[VenueCacheWarmerService] Failed to load pool for %q: %v", city, err)
			continue
		}
		if err := vw.cache.SetCityPool(city, pool); err != nil {
			log.Printf("[VenueCacheWarmerService] Failed to cache pool for %q: %v", city, err)
			continue
		}
		log.Printf("[VenueCacheWarmerService] Cached %d venues for %q", len(pool), city)
	}
	return nil
}

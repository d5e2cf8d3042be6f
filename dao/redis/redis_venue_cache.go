package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"partypilot/db"
	"partypilot/models/venue"
)

const VENUES_CITY_KEY_FORMAT_V1 = "venues_city_v1:%s"

// RedisVenueCache keeps the per-city venue pool in Redis so the matcher does
// not hit Postgres on every planning request.
type RedisVenueCache struct {
	client db.RedisClient
}

// NewRedisVenueCache initializes a RedisVenueCache with the Redis client.
func NewRedisVenueCache(client db.RedisClient) *RedisVenueCache {
	return &RedisVenueCache{client: client}
}

func cityKey(city string) string {
	return fmt.Sprintf(VENUES_CITY_KEY_FORMAT_V1, strings.ToLower(strings.TrimSpace(city)))
}

// SetCityPool stores the full venue pool for a city. Pool order is preserved,
// which the matcher's tie-break depends on.
func (c *RedisVenueCache) SetCityPool(city string, venues []venue.Venue) error {
	data, err := json.Marshal(venues)
	if err != nil {
		return fmt.Errorf("failed to marshal venue pool for %q: %w", city, err)
	}
	if err := c.client.Set(cityKey(city), string(data)); err != nil {
		return fmt.Errorf("failed to set venue pool in redis: %w", err)
	}
	return nil
}

// GetCityPool retrieves the cached venue pool for a city. The boolean is
// false on a cache miss.
func (c *RedisVenueCache) GetCityPool(city string) ([]venue.Venue, bool, error) {
	str, err := c.client.Get(cityKey(city))
	if err != nil {
		if db.IsCacheMiss(err) || strings.Contains(err.Error(), "not found") {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get venue pool from redis: %w", err)
	}

	var venues []venue.Venue
	if err := json.Unmarshal([]byte(str), &venues); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal venue pool JSON: %w", err)
	}
	return venues, true, nil
}

// InvalidateCity drops the cached pool for a city after a venue write.
func (c *RedisVenueCache) InvalidateCity(city string) error {
	if err := c.client.Del(cityKey(city)); err != nil {
		return fmt.Errorf("failed to invalidate venue pool for %q: %w", city, err)
	}
	log.Printf("[RedisVenueCache] Invalidated venue pool for city %q", city)
	return nil
}

// ListCachedCities returns the (lowercased) cities with a cached pool.
func (c *RedisVenueCache) ListCachedCities() ([]string, error) {
	pattern := fmt.Sprintf(VENUES_CITY_KEY_FORMAT_V1, "*")
	keys, err := c.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue pool keys: %w", err)
	}

	prefix := fmt.Sprintf(VENUES_CITY_KEY_FORMAT_V1, "")
	cities := make([]string, 0, len(keys))
	for _, k := range keys {
		cities = append(cities, strings.TrimPrefix(k, prefix))
	}
	return cities, nil
}

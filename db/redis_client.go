package db

import "context"

// RedisClient defines the subset of Redis operations the caches need.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
	GetContext() context.Context
}

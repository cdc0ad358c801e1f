package repository

//go:generate mockgen -source=cache_repository.go -destination=mocks/mock_cache_repository.go

import (
	"context"
	"time"
)

// CacheRepository stores serialized simulation results by config hash.
// A ttl of zero keeps the entry until it is evicted.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

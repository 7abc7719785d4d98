package usecase

import (
	"context"
	"time"
)

// EntityCache is the slice of the Redis cache the usecases touch.
// A nil cache disables caching entirely.
type EntityCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateEntityCaches(ctx context.Context)
}

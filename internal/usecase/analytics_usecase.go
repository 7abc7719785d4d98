package usecase

import (
	"context"
	"time"

	"staffhub/internal/infrastructure/cache"
	"staffhub/internal/repository"
)

const dashboardStatsTTL = 60 * time.Second

type AnalyticsUsecase interface {
	DashboardStats(ctx context.Context) (repository.DashboardStats, error)
}

type Analytics struct {
	repo  repository.AnalyticsRepository
	cache EntityCache
}

func NewAnalyticsUsecase(repo repository.AnalyticsRepository, c EntityCache) *Analytics {
	return &Analytics{repo: repo, cache: c}
}

// DashboardStats serves from Redis when a fresh copy exists. Mutating
// usecases invalidate the key, so a short TTL only bounds staleness
// from writes that bypass the API.
func (u *Analytics) DashboardStats(ctx context.Context) (repository.DashboardStats, error) {
	if u.cache != nil {
		var cached repository.DashboardStats
		if ok, err := u.cache.GetJSON(ctx, cache.KeyDashboardStats, &cached); err == nil && ok {
			return cached, nil
		}
	}

	stats, err := u.repo.GetDashboardStats(ctx)
	if err != nil {
		return repository.DashboardStats{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeyDashboardStats, stats, dashboardStatsTTL)
	}
	return stats, nil
}

package usecase

import (
	"context"
	"time"
)

const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"

	CacheStatusUp       = "up"
	CacheStatusDown     = "down"
	CacheStatusDisabled = "disabled"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Status     string
	Service    string
	Database   bool
	Cache      string
	ServerTime time.Time
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type Health struct {
	service string
	store   Pinger
	cache   Pinger
	now     func() time.Time
}

// NewHealthUsecase reports on store and cache reachability. cache is nil
// when caching is disabled.
func NewHealthUsecase(service string, store Pinger, cache Pinger) *Health {
	return &Health{service: service, store: store, cache: cache, now: time.Now}
}

func (u *Health) Check(ctx context.Context) HealthStatus {
	out := HealthStatus{
		Status:     HealthStatusHealthy,
		Service:    u.service,
		Cache:      CacheStatusDisabled,
		ServerTime: u.now().UTC(),
	}

	if u.store != nil {
		out.Database = ping(ctx, u.store) == nil
	}
	if !out.Database {
		out.Status = HealthStatusDegraded
	}

	if u.cache != nil {
		if err := ping(ctx, u.cache); err != nil {
			out.Cache = CacheStatusDown
		} else {
			out.Cache = CacheStatusUp
		}
	}
	return out
}

func ping(ctx context.Context, p Pinger) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Ping(pingCtx)
}

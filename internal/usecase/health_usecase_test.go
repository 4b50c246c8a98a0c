package usecase

import (
	"context"
	"errors"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth_Check(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("down") })

	cases := []struct {
		name       string
		store      Pinger
		cache      Pinger
		wantStatus string
		wantDB     bool
		wantCache  string
	}{
		{name: "all up", store: up, cache: up, wantStatus: HealthStatusHealthy, wantDB: true, wantCache: CacheStatusUp},
		{name: "cache disabled", store: up, wantStatus: HealthStatusHealthy, wantDB: true, wantCache: CacheStatusDisabled},
		{name: "cache down", store: up, cache: down, wantStatus: HealthStatusHealthy, wantDB: true, wantCache: CacheStatusDown},
		{name: "store down", store: down, wantStatus: HealthStatusDegraded, wantDB: false, wantCache: CacheStatusDisabled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewHealthUsecase("Skills API", tc.store, tc.cache).Check(context.Background())
			if got.Status != tc.wantStatus || got.Database != tc.wantDB || got.Cache != tc.wantCache {
				t.Fatalf("unexpected status: %+v", got)
			}
			if got.Service != "Skills API" {
				t.Fatalf("unexpected service: %s", got.Service)
			}
		})
	}
}

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRedis_UnavailableIsNoop(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	var out []string
	hit, err := r.GetJSON(ctx, "skills:list:all", &out)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "skills:list:all", []string{"Go"}, time.Minute); err != nil {
		t.Fatalf("unexpected set err: %v", err)
	}
	if err := r.DeleteByPattern(ctx, "skills:*"); err != nil {
		t.Fatalf("unexpected delete err: %v", err)
	}
	if err := r.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	bypass := &Redis{ttl: DefaultTTL}
	if err := bypass.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := bypass.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}

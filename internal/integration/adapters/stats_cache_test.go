package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*redisStatsCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisStatsCache{client: client}, srv
}

func TestRedisStatsCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	payload, err := cache.GetDashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if payload != nil {
		t.Errorf("payload = %q, want nil on miss", payload)
	}
}

func TestRedisStatsCache_SetGetInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	want := []byte(`{"faturamentoHoje":"30.00"}`)

	if err := cache.SetDashboard(ctx, userID, want); err != nil {
		t.Fatalf("SetDashboard: %v", err)
	}

	got, err := cache.GetDashboard(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("payload = %q, want %q", got, want)
	}

	if err := cache.InvalidateDashboard(ctx, userID); err != nil {
		t.Fatalf("InvalidateDashboard: %v", err)
	}
	got, err = cache.GetDashboard(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboard after invalidate: %v", err)
	}
	if got != nil {
		t.Errorf("payload = %q, want nil after invalidate", got)
	}
}

func TestRedisStatsCache_EntryExpires(t *testing.T) {
	cache, srv := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := cache.SetDashboard(ctx, userID, []byte(`{}`)); err != nil {
		t.Fatalf("SetDashboard: %v", err)
	}
	srv.FastForward(dashboardTTL)

	got, err := cache.GetDashboard(ctx, userID)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if got != nil {
		t.Errorf("payload = %q, want nil after TTL", got)
	}
}

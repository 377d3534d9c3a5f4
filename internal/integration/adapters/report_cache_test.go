package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/usecase/calculator"
)

func newTestCache(t *testing.T) *ReportCache {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewReportCache(client, time.Minute)
}

func TestReportCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, hit, err := cache.Get(ctx, userID, "2026-03-01:2026-03-31"); err != nil || hit {
		t.Fatalf("expected a clean miss, got hit=%v err=%v", hit, err)
	}

	report := &calculator.RawReport{
		TotalOfAll: decimal.RequireFromString("280"),
		Profit:     decimal.RequireFromString("120"),
	}
	if err := cache.Set(ctx, userID, "2026-03-01:2026-03-31", report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, hit, err := cache.Get(ctx, userID, "2026-03-01:2026-03-31")
	if err != nil || !hit {
		t.Fatalf("expected a hit, got hit=%v err=%v", hit, err)
	}
	if !cached.TotalOfAll.Equal(report.TotalOfAll) {
		t.Errorf("expected total %s, got %s", report.TotalOfAll, cached.TotalOfAll)
	}
}

func TestReportCacheInvalidateAll(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	report := &calculator.RawReport{TotalOfAll: decimal.RequireFromString("280")}

	if err := cache.Set(ctx, userA, "2026-03-01:2026-03-31", report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(ctx, userB, "2026-03-01:2026-03-31", report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.InvalidateAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, userID := range []uuid.UUID{userA, userB} {
		if _, hit, err := cache.Get(ctx, userID, "2026-03-01:2026-03-31"); err != nil || hit {
			t.Errorf("user %s: expected entry to be dropped, got hit=%v err=%v", userID, hit, err)
		}
	}
}

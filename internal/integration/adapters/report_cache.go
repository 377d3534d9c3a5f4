// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/application/usecase/calculator"
)

// ReportCache caches raw report payloads in Redis, keyed by user and filter
// fingerprint. A miss is not an error; callers fall through to the database.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached raw report for the user and filter fingerprint.
func (c *ReportCache) Get(ctx context.Context, userID uuid.UUID, fingerprint string) (*calculator.RawReport, bool, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID, fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read report cache: %w", err)
	}

	var report calculator.RawReport
	if err := json.Unmarshal(payload, &report); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return nil, false, nil
	}
	return &report, true, nil
}

// Set stores a raw report for the user and filter fingerprint.
func (c *ReportCache) Set(ctx context.Context, userID uuid.UUID, fingerprint string, report *calculator.RawReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(userID, fingerprint), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached report. Reports span all users' work, so
// a write to any report input makes every cached entry stale.
func (c *ReportCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "report:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to invalidate report cache: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan report cache keys: %w", err)
	}
	return nil
}

func cacheKey(userID uuid.UUID, fingerprint string) string {
	return fmt.Sprintf("report:%s:%s", userID, fingerprint)
}

// Ensure ReportCache implements both the read and invalidation contracts.
var (
	_ calculator.ReportCache    = (*ReportCache)(nil)
	_ adapter.ReportInvalidator = (*ReportCache)(nil)
)

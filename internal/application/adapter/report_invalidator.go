package adapter

import "context"

// ReportInvalidator drops cached report payloads after a write changes the
// data reports are built from. Reports aggregate across all users, so any
// such write invalidates every cached entry, not just the writer's.
type ReportInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

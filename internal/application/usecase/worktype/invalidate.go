package worktype

import (
	"context"
	"log/slog"

	"github.com/worktrack/backend/internal/application/adapter"
)

// invalidateReports drops cached report payloads after a successful write.
// Caching is an optimization; a failed invalidation is logged, not returned.
func invalidateReports(ctx context.Context, invalidator adapter.ReportInvalidator) {
	if invalidator == nil {
		return
	}
	if err := invalidator.InvalidateAll(ctx); err != nil {
		slog.Warn("Report cache invalidation failed", "error", err)
	}
}

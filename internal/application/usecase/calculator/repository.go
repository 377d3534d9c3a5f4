package calculator

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportFilter selects the raw data the report is built from: a date range and
// an optional tag to include or exclude.
type ReportFilter struct {
	FromDate     time.Time
	ToDate       time.Time
	TagID        *uuid.UUID
	ExcludeTagID *uuid.UUID
}

// Fingerprint returns a stable identity for the filter, used for cache keys
// and for detecting whether a fetch result still matches the active filter.
func (f ReportFilter) Fingerprint() string {
	fp := f.FromDate.Format("2006-01-02") + ":" + f.ToDate.Format("2006-01-02")
	if f.TagID != nil {
		fp += ":tag=" + f.TagID.String()
	}
	if f.ExcludeTagID != nil {
		fp += ":xtag=" + f.ExcludeTagID.String()
	}
	return fp
}

// ReportRepository supplies the pre-grouped raw report payload for a filter.
type ReportRepository interface {
	// GetGroupedWork aggregates work records in the range into groups keyed by
	// "{pricePerUnit}|{typeName}", in deterministic server order, together with
	// the baseline grand total and the profit over the range.
	GetGroupedWork(ctx context.Context, filter ReportFilter) (*RawReport, error)
}

// ReportCache caches raw report payloads per filter so repeated fetches of the
// same range skip the aggregation query. Writes that change report inputs
// invalidate entries through adapter.ReportInvalidator.
type ReportCache interface {
	Get(ctx context.Context, userID uuid.UUID, fingerprint string) (*RawReport, bool, error)
	Set(ctx context.Context, userID uuid.UUID, fingerprint string, report *RawReport) error
}

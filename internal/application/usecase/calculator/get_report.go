package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// GetReportInput represents the input for fetching a calculator report.
type GetReportInput struct {
	UserID       uuid.UUID
	FromDate     time.Time
	ToDate       time.Time
	TagID        *uuid.UUID
	ExcludeTagID *uuid.UUID
}

// GetReportOutput represents the output of fetching a calculator report.
type GetReportOutput struct {
	State *AggregationState
}

// GetReportUseCase fetches the raw grouped payload for a filter, builds the
// aggregation and installs it as the user's current session. Any previous
// session, including its overrides and collapse flags, is replaced.
type GetReportUseCase struct {
	reportRepo        ReportRepository
	cache             ReportCache
	sessions          *SessionStore
	multiplierDivisor decimal.Decimal
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(
	reportRepo ReportRepository,
	cache ReportCache,
	sessions *SessionStore,
	multiplierDivisor decimal.Decimal,
) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo:        reportRepo,
		cache:             cache,
		sessions:          sessions,
		multiplierDivisor: multiplierDivisor,
	}
}

// Execute fetches and builds the report for the filter.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	filter := ReportFilter{
		FromDate:     input.FromDate,
		ToDate:       input.ToDate,
		TagID:        input.TagID,
		ExcludeTagID: input.ExcludeTagID,
	}

	// Register this fetch before doing any IO so a filter change that arrives
	// while the query runs supersedes it.
	generation := uc.sessions.Begin(input.UserID)

	raw, err := uc.fetchRawReport(ctx, input.UserID, filter)
	if err != nil {
		return nil, err
	}

	state, err := BuildAggregation(*raw, uc.multiplierDivisor)
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Commit(input.UserID, generation, filter, state); err != nil {
		// Lost the race to a newer filter: drop this result silently and hand
		// back whatever the newer fetch installed.
		if errors.Is(err, domainerror.ErrStaleFilter) {
			slog.Debug("Discarding stale report fetch", "user_id", input.UserID, "filter", filter.Fingerprint())
			current, viewErr := uc.sessions.View(input.UserID)
			if viewErr != nil {
				return nil, err
			}
			return &GetReportOutput{State: current}, nil
		}
		return nil, err
	}

	return &GetReportOutput{State: state}, nil
}

// fetchRawReport serves the payload from cache when possible. Cache failures
// are logged and fall through to the repository; caching is an optimization,
// never a correctness dependency.
func (uc *GetReportUseCase) fetchRawReport(ctx context.Context, userID uuid.UUID, filter ReportFilter) (*RawReport, error) {
	fingerprint := filter.Fingerprint()

	if uc.cache != nil {
		cached, hit, err := uc.cache.Get(ctx, userID, fingerprint)
		if err != nil {
			slog.Warn("Report cache read failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	raw, err := uc.reportRepo.GetGroupedWork(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grouped work report: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, userID, fingerprint, raw); err != nil {
			slog.Warn("Report cache write failed", "error", err)
		}
	}

	return raw, nil
}

// validateInput validates the report filter parameters.
func (uc *GetReportUseCase) validateInput(input GetReportInput) error {
	if input.FromDate.IsZero() || input.ToDate.IsZero() {
		return domainerror.NewCalculatorError(
			domainerror.ErrCodeInvalidCalcDateRange,
			"from_date and to_date are required",
			domainerror.ErrInvalidDateRange,
		)
	}
	if input.ToDate.Before(input.FromDate) {
		return domainerror.NewCalculatorError(
			domainerror.ErrCodeInvalidCalcDateRange,
			"to_date must not be before from_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

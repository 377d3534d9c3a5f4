package worktype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// ClearUserRateInput represents the input for clearing a personal rate.
type ClearUserRateInput struct {
	UserID     uuid.UUID
	WorkTypeID uuid.UUID
}

// ClearUserRateUseCase handles removing a worker's personal rate, returning
// the worker to the work type's nominal price in future reports.
type ClearUserRateUseCase struct {
	rateRepo          adapter.UserWorkTypeRateRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewClearUserRateUseCase creates a new ClearUserRateUseCase instance.
func NewClearUserRateUseCase(rateRepo adapter.UserWorkTypeRateRepository, reportInvalidator adapter.ReportInvalidator) *ClearUserRateUseCase {
	return &ClearUserRateUseCase{
		rateRepo:          rateRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute removes the personal rate for a (user, work type) pair.
func (uc *ClearUserRateUseCase) Execute(ctx context.Context, input ClearUserRateInput) error {
	if _, err := uc.rateRepo.Find(ctx, input.UserID, input.WorkTypeID); err != nil {
		return domainerror.NewWorkTypeError(
			domainerror.ErrCodeRateNotFound,
			"personal rate not found",
			domainerror.ErrRateNotFound,
		)
	}
	if err := uc.rateRepo.Delete(ctx, input.UserID, input.WorkTypeID); err != nil {
		return fmt.Errorf("failed to delete personal rate: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return nil
}

package worktype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// DeleteWorkTypeInput represents the input for work type deletion.
type DeleteWorkTypeInput struct {
	ID uuid.UUID
}

// DeleteWorkTypeUseCase handles work type deletion logic.
type DeleteWorkTypeUseCase struct {
	workTypeRepo      adapter.WorkTypeRepository
	workRepo          adapter.WorkRepository
	rateRepo          adapter.UserWorkTypeRateRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewDeleteWorkTypeUseCase creates a new DeleteWorkTypeUseCase instance.
func NewDeleteWorkTypeUseCase(
	workTypeRepo adapter.WorkTypeRepository,
	workRepo adapter.WorkRepository,
	rateRepo adapter.UserWorkTypeRateRepository,
	reportInvalidator adapter.ReportInvalidator,
) *DeleteWorkTypeUseCase {
	return &DeleteWorkTypeUseCase{
		workTypeRepo:      workTypeRepo,
		workRepo:          workRepo,
		rateRepo:          rateRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the work type deletion. Work types referenced by work
// records cannot be deleted; personal rates are removed along with the type.
func (uc *DeleteWorkTypeUseCase) Execute(ctx context.Context, input DeleteWorkTypeInput) error {
	if _, err := uc.workTypeRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeNotFoundWT,
			"work type not found",
			domainerror.ErrWorkTypeNotFound,
		)
	}

	count, err := uc.workRepo.CountByWorkType(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count work records: %w", err)
	}
	if count > 0 {
		return domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeInUse,
			fmt.Sprintf("work type is referenced by %d work record(s)", count),
			domainerror.ErrWorkTypeInUse,
		)
	}

	if err := uc.rateRepo.DeleteByWorkType(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete personal rates: %w", err)
	}
	if err := uc.workTypeRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete work type: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return nil
}

package worktype

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// SetUserRateInput represents the input for setting a personal rate.
// PricePerUnit is the multiplier figure in operator units; the calculator
// divides it by the configured divisor when it builds the report.
type SetUserRateInput struct {
	UserID       uuid.UUID
	WorkTypeID   uuid.UUID
	PricePerUnit decimal.Decimal
}

// SetUserRateOutput represents the output of setting a personal rate.
type SetUserRateOutput struct {
	Rate *entity.UserWorkTypeRate
}

// SetUserRateUseCase handles creating or replacing a worker's personal rate.
type SetUserRateUseCase struct {
	workTypeRepo      adapter.WorkTypeRepository
	userRepo          adapter.UserRepository
	rateRepo          adapter.UserWorkTypeRateRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewSetUserRateUseCase creates a new SetUserRateUseCase instance.
func NewSetUserRateUseCase(
	workTypeRepo adapter.WorkTypeRepository,
	userRepo adapter.UserRepository,
	rateRepo adapter.UserWorkTypeRateRepository,
	reportInvalidator adapter.ReportInvalidator,
) *SetUserRateUseCase {
	return &SetUserRateUseCase{
		workTypeRepo:      workTypeRepo,
		userRepo:          userRepo,
		rateRepo:          rateRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute upserts the personal rate for a (user, work type) pair.
func (uc *SetUserRateUseCase) Execute(ctx context.Context, input SetUserRateInput) (*SetUserRateOutput, error) {
	if !input.PricePerUnit.IsPositive() {
		return nil, domainerror.NewWorkTypeError(
			domainerror.ErrCodeInvalidPricePerUnit,
			"personal rate must be positive",
			domainerror.ErrInvalidPricePerUnit,
		)
	}

	if _, err := uc.workTypeRepo.FindByID(ctx, input.WorkTypeID); err != nil {
		return nil, domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeNotFoundWT,
			"work type not found",
			domainerror.ErrWorkTypeNotFound,
		)
	}
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	rate := entity.NewUserWorkTypeRate(input.UserID, input.WorkTypeID, input.PricePerUnit)
	if err := uc.rateRepo.Upsert(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save personal rate: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)

	return &SetUserRateOutput{Rate: rate}, nil
}

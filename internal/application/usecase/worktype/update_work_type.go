package worktype

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// UpdateWorkTypeInput represents the input for work type update.
type UpdateWorkTypeInput struct {
	ID           uuid.UUID
	Name         *string
	PricePerUnit *decimal.Decimal
}

// UpdateWorkTypeOutput represents the output of work type update.
type UpdateWorkTypeOutput struct {
	WorkType *entity.WorkType
}

// UpdateWorkTypeUseCase handles work type update logic.
type UpdateWorkTypeUseCase struct {
	workTypeRepo      adapter.WorkTypeRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewUpdateWorkTypeUseCase creates a new UpdateWorkTypeUseCase instance.
func NewUpdateWorkTypeUseCase(workTypeRepo adapter.WorkTypeRepository, reportInvalidator adapter.ReportInvalidator) *UpdateWorkTypeUseCase {
	return &UpdateWorkTypeUseCase{
		workTypeRepo:      workTypeRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the work type update. Changing the price per unit moves
// future report rows into a different group; existing work records keep
// pointing at the same work type.
func (uc *UpdateWorkTypeUseCase) Execute(ctx context.Context, input UpdateWorkTypeInput) (*UpdateWorkTypeOutput, error) {
	workType, err := uc.workTypeRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeNotFoundWT,
			"work type not found",
			domainerror.ErrWorkTypeNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateWorkTypeName(name); err != nil {
			return nil, err
		}
		if name != workType.Name {
			exists, err := uc.workTypeRepo.ExistsByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check work type name: %w", err)
			}
			if exists {
				return nil, domainerror.NewWorkTypeError(
					domainerror.ErrCodeWorkTypeNameExists,
					"a work type with this name already exists",
					domainerror.ErrWorkTypeNameExists,
				)
			}
		}
		workType.Name = name
	}

	if input.PricePerUnit != nil {
		if !input.PricePerUnit.IsPositive() {
			return nil, domainerror.NewWorkTypeError(
				domainerror.ErrCodeInvalidPricePerUnit,
				"price per unit must be positive",
				domainerror.ErrInvalidPricePerUnit,
			)
		}
		workType.PricePerUnit = *input.PricePerUnit
	}

	workType.UpdatedAt = time.Now().UTC()
	if err := uc.workTypeRepo.Update(ctx, workType); err != nil {
		return nil, fmt.Errorf("failed to update work type: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)

	return &UpdateWorkTypeOutput{WorkType: workType}, nil
}

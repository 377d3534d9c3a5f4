// Package worktype contains work-type-related use cases.
package worktype

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/domain/valueobject"
)

const (
	// MaxWorkTypeNameLength is the maximum allowed length for work type names.
	MaxWorkTypeNameLength = 100
)

// CreateWorkTypeInput represents the input for work type creation.
type CreateWorkTypeInput struct {
	Name         string
	PricePerUnit decimal.Decimal
}

// CreateWorkTypeOutput represents the output of work type creation.
type CreateWorkTypeOutput struct {
	WorkType *entity.WorkType
}

// CreateWorkTypeUseCase handles work type creation logic.
type CreateWorkTypeUseCase struct {
	workTypeRepo adapter.WorkTypeRepository
}

// NewCreateWorkTypeUseCase creates a new CreateWorkTypeUseCase instance.
func NewCreateWorkTypeUseCase(workTypeRepo adapter.WorkTypeRepository) *CreateWorkTypeUseCase {
	return &CreateWorkTypeUseCase{
		workTypeRepo: workTypeRepo,
	}
}

// Execute performs the work type creation.
func (uc *CreateWorkTypeUseCase) Execute(ctx context.Context, input CreateWorkTypeInput) (*CreateWorkTypeOutput, error) {
	name := strings.TrimSpace(input.Name)

	if err := validateWorkTypeName(name); err != nil {
		return nil, err
	}

	if !input.PricePerUnit.IsPositive() {
		return nil, domainerror.NewWorkTypeError(
			domainerror.ErrCodeInvalidPricePerUnit,
			"price per unit must be positive",
			domainerror.ErrInvalidPricePerUnit,
		)
	}

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

	workType := entity.NewWorkType(name, input.PricePerUnit)
	if err := uc.workTypeRepo.Create(ctx, workType); err != nil {
		return nil, fmt.Errorf("failed to create work type: %w", err)
	}

	return &CreateWorkTypeOutput{WorkType: workType}, nil
}

// validateWorkTypeName rejects empty, oversized, or delimiter-bearing names.
// The group key format reserves the delimiter, so names may not contain it.
func validateWorkTypeName(name string) error {
	if name == "" {
		return domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeNameTooLong,
			"work type name is required",
			domainerror.ErrWorkTypeNameTooLong,
		)
	}
	if len(name) > MaxWorkTypeNameLength {
		return domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeNameTooLong,
			fmt.Sprintf("work type name must not exceed %d characters", MaxWorkTypeNameLength),
			domainerror.ErrWorkTypeNameTooLong,
		)
	}
	if strings.Contains(name, valueobject.GroupKeyDelimiter) {
		return domainerror.NewWorkTypeError(
			domainerror.ErrCodeWorkTypeNameReserved,
			fmt.Sprintf("work type name must not contain %q", valueobject.GroupKeyDelimiter),
			domainerror.ErrWorkTypeNameReservedChar,
		)
	}
	return nil
}

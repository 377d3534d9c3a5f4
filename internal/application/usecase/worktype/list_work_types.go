package worktype

import (
	"context"
	"fmt"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
)

// ListWorkTypesOutput represents the output of listing work types.
type ListWorkTypesOutput struct {
	WorkTypes []*entity.WorkType
}

// ListWorkTypesUseCase handles listing all work types.
type ListWorkTypesUseCase struct {
	workTypeRepo adapter.WorkTypeRepository
}

// NewListWorkTypesUseCase creates a new ListWorkTypesUseCase instance.
func NewListWorkTypesUseCase(workTypeRepo adapter.WorkTypeRepository) *ListWorkTypesUseCase {
	return &ListWorkTypesUseCase{
		workTypeRepo: workTypeRepo,
	}
}

// Execute retrieves all work types ordered by name.
func (uc *ListWorkTypesUseCase) Execute(ctx context.Context) (*ListWorkTypesOutput, error) {
	workTypes, err := uc.workTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}
	return &ListWorkTypesOutput{WorkTypes: workTypes}, nil
}

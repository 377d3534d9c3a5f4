package work

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
)

const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 50
	// MaxPageLimit caps the requested page size.
	MaxPageLimit = 200
)

// ListWorksInput represents the input for listing work records.
type ListWorksInput struct {
	ActorID   uuid.UUID
	ActorRole entity.Role

	UserID       *uuid.UUID
	WorkTypeID   *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	TagID        *uuid.UUID
	ExcludeTagID *uuid.UUID
	Page         int
	Limit        int
}

// ListWorksOutput represents the output of listing work records.
type ListWorksOutput struct {
	Result *entity.WorkListResult
}

// ListWorksUseCase handles listing work records.
type ListWorksUseCase struct {
	workRepo adapter.WorkRepository
}

// NewListWorksUseCase creates a new ListWorksUseCase instance.
func NewListWorksUseCase(workRepo adapter.WorkRepository) *ListWorksUseCase {
	return &ListWorksUseCase{
		workRepo: workRepo,
	}
}

// Execute retrieves work records. Workers are scoped to their own records
// regardless of the requested user filter.
func (uc *ListWorksUseCase) Execute(ctx context.Context, input ListWorksInput) (*ListWorksOutput, error) {
	filter := adapter.WorkFilter{
		UserID:       input.UserID,
		WorkTypeID:   input.WorkTypeID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		TagID:        input.TagID,
		ExcludeTagID: input.ExcludeTagID,
	}
	if input.ActorRole == entity.RoleWorker {
		actorID := input.ActorID
		filter.UserID = &actorID
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	result, err := uc.workRepo.FindByFilter(ctx, filter, adapter.WorkPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	return &ListWorksOutput{Result: result}, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/domain/entity"
)

// WorkFilter defines filter options for listing work records.
type WorkFilter struct {
	UserID       *uuid.UUID
	WorkTypeID   *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	TagID        *uuid.UUID
	ExcludeTagID *uuid.UUID
}

// WorkPagination defines pagination options.
type WorkPagination struct {
	Page  int
	Limit int
}

// WorkRepository defines the interface for work record persistence operations.
type WorkRepository interface {
	// Create creates a new work record in the database.
	Create(ctx context.Context, work *entity.Work) error

	// FindByID retrieves a work record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Work, error)

	// FindByIDWithDetails retrieves a work record with its work type and tags.
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.WorkWithDetails, error)

	// FindByFilter retrieves work records based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter WorkFilter, pagination WorkPagination) (*entity.WorkListResult, error)

	// Update updates an existing work record in the database.
	Update(ctx context.Context, work *entity.Work) error

	// Delete soft-deletes a work record from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByWorkType counts non-deleted work records referencing a work type.
	CountByWorkType(ctx context.Context, workTypeID uuid.UUID) (int64, error)

	// CountByTag counts non-deleted work records referencing a tag.
	CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error)
}

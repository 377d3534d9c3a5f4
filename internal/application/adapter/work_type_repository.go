// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/domain/entity"
)

// WorkTypeRepository defines the interface for work type persistence operations.
type WorkTypeRepository interface {
	// Create creates a new work type in the database.
	Create(ctx context.Context, workType *entity.WorkType) error

	// FindByID retrieves a work type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkType, error)

	// FindAll retrieves all work types ordered by name.
	FindAll(ctx context.Context) ([]*entity.WorkType, error)

	// ExistsByName checks if a work type with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing work type in the database.
	Update(ctx context.Context, workType *entity.WorkType) error

	// Delete removes a work type from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserWorkTypeRateRepository defines the interface for personal rate persistence.
type UserWorkTypeRateRepository interface {
	// Upsert creates or replaces the personal rate for a (user, work type) pair.
	Upsert(ctx context.Context, rate *entity.UserWorkTypeRate) error

	// Find retrieves the personal rate for a (user, work type) pair.
	Find(ctx context.Context, userID, workTypeID uuid.UUID) (*entity.UserWorkTypeRate, error)

	// FindByUser retrieves all personal rates for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserWorkTypeRate, error)

	// Delete removes the personal rate for a (user, work type) pair.
	Delete(ctx context.Context, userID, workTypeID uuid.UUID) error

	// DeleteByWorkType removes all personal rates for a work type.
	DeleteByWorkType(ctx context.Context, workTypeID uuid.UUID) error
}

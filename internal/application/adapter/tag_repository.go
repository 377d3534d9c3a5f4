// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/domain/entity"
)

// TagRepository defines the interface for tag persistence operations.
type TagRepository interface {
	// Create creates a new tag in the database.
	Create(ctx context.Context, tag *entity.Tag) error

	// FindByID retrieves a tag by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)

	// FindByIDs retrieves the tags matching the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tag, error)

	// FindAll retrieves all tags ordered by name.
	FindAll(ctx context.Context) ([]*entity.Tag, error)

	// ExistsByName checks if a tag with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing tag in the database.
	Update(ctx context.Context, tag *entity.Tag) error

	// Delete removes a tag from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

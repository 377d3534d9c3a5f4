package tag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// UpdateTagInput represents the input for tag update.
type UpdateTagInput struct {
	ID   uuid.UUID
	Name string
}

// UpdateTagOutput represents the output of tag update.
type UpdateTagOutput struct {
	Tag *entity.Tag
}

// UpdateTagUseCase handles tag update logic.
type UpdateTagUseCase struct {
	tagRepo adapter.TagRepository
}

// NewUpdateTagUseCase creates a new UpdateTagUseCase instance.
func NewUpdateTagUseCase(tagRepo adapter.TagRepository) *UpdateTagUseCase {
	return &UpdateTagUseCase{
		tagRepo: tagRepo,
	}
}

// Execute performs the tag update.
func (uc *UpdateTagUseCase) Execute(ctx context.Context, input UpdateTagInput) (*UpdateTagOutput, error) {
	tag, err := uc.tagRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTagError(
			domainerror.ErrCodeTagNotFound,
			"tag not found",
			domainerror.ErrTagNotFound,
		)
	}

	name := strings.TrimSpace(input.Name)
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	if name != tag.Name {
		exists, err := uc.tagRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check tag name: %w", err)
		}
		if exists {
			return nil, domainerror.NewTagError(
				domainerror.ErrCodeTagNameExists,
				"a tag with this name already exists",
				domainerror.ErrTagNameExists,
			)
		}
	}

	tag.Name = name
	tag.UpdatedAt = time.Now().UTC()
	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return &UpdateTagOutput{Tag: tag}, nil
}

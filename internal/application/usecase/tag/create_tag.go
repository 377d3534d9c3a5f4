// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

const (
	// MaxTagNameLength is the maximum allowed length for tag names.
	MaxTagNameLength = 50
)

// CreateTagInput represents the input for tag creation.
type CreateTagInput struct {
	Name string
}

// CreateTagOutput represents the output of tag creation.
type CreateTagOutput struct {
	Tag *entity.Tag
}

// CreateTagUseCase handles tag creation logic.
type CreateTagUseCase struct {
	tagRepo adapter.TagRepository
}

// NewCreateTagUseCase creates a new CreateTagUseCase instance.
func NewCreateTagUseCase(tagRepo adapter.TagRepository) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
	}
}

// Execute performs the tag creation.
func (uc *CreateTagUseCase) Execute(ctx context.Context, input CreateTagInput) (*CreateTagOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateTagName(name); err != nil {
		return nil, err
	}

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

	tag := entity.NewTag(name)
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &CreateTagOutput{Tag: tag}, nil
}

func validateTagName(name string) error {
	if name == "" || len(name) > MaxTagNameLength {
		return domainerror.NewTagError(
			domainerror.ErrCodeTagNameTooLong,
			fmt.Sprintf("tag name must be between 1 and %d characters", MaxTagNameLength),
			domainerror.ErrTagNameTooLong,
		)
	}
	return nil
}

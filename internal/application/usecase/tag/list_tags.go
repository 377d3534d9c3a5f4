package tag

import (
	"context"
	"fmt"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
)

// ListTagsOutput represents the output of listing tags.
type ListTagsOutput struct {
	Tags []*entity.Tag
}

// ListTagsUseCase handles listing all tags.
type ListTagsUseCase struct {
	tagRepo adapter.TagRepository
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(tagRepo adapter.TagRepository) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo: tagRepo,
	}
}

// Execute retrieves all tags ordered by name.
func (uc *ListTagsUseCase) Execute(ctx context.Context) (*ListTagsOutput, error) {
	tags, err := uc.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return &ListTagsOutput{Tags: tags}, nil
}

package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// DeleteTagInput represents the input for tag deletion.
type DeleteTagInput struct {
	ID uuid.UUID
}

// DeleteTagUseCase handles tag deletion logic.
type DeleteTagUseCase struct {
	tagRepo  adapter.TagRepository
	workRepo adapter.WorkRepository
}

// NewDeleteTagUseCase creates a new DeleteTagUseCase instance.
func NewDeleteTagUseCase(tagRepo adapter.TagRepository, workRepo adapter.WorkRepository) *DeleteTagUseCase {
	return &DeleteTagUseCase{
		tagRepo:  tagRepo,
		workRepo: workRepo,
	}
}

// Execute performs the tag deletion. Tags referenced by work records cannot
// be deleted.
func (uc *DeleteTagUseCase) Execute(ctx context.Context, input DeleteTagInput) error {
	if _, err := uc.tagRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewTagError(
			domainerror.ErrCodeTagNotFound,
			"tag not found",
			domainerror.ErrTagNotFound,
		)
	}

	count, err := uc.workRepo.CountByTag(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count work records: %w", err)
	}
	if count > 0 {
		return domainerror.NewTagError(
			domainerror.ErrCodeTagInUse,
			fmt.Sprintf("tag is referenced by %d work record(s)", count),
			domainerror.ErrTagInUse,
		)
	}

	if err := uc.tagRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

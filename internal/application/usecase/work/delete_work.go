package work

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// DeleteWorkInput represents the input for work record deletion.
type DeleteWorkInput struct {
	ActorID   uuid.UUID
	ActorRole entity.Role

	ID uuid.UUID
}

// DeleteWorkUseCase handles work record deletion logic.
type DeleteWorkUseCase struct {
	workRepo          adapter.WorkRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewDeleteWorkUseCase creates a new DeleteWorkUseCase instance.
func NewDeleteWorkUseCase(workRepo adapter.WorkRepository, reportInvalidator adapter.ReportInvalidator) *DeleteWorkUseCase {
	return &DeleteWorkUseCase{
		workRepo:          workRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute soft-deletes the work record.
func (uc *DeleteWorkUseCase) Execute(ctx context.Context, input DeleteWorkInput) error {
	work, err := uc.workRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewWorkError(
			domainerror.ErrCodeWorkNotFound,
			"work record not found",
			domainerror.ErrWorkNotFound,
		)
	}

	if input.ActorRole == entity.RoleWorker && work.UserID != input.ActorID {
		return domainerror.NewWorkError(
			domainerror.ErrCodeNotAuthorizedWork,
			"workers may only modify their own work",
			domainerror.ErrNotAuthorizedToModifyWork,
		)
	}

	if err := uc.workRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete work record: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return nil
}

package work

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// UpdateWorkInput represents the input for work record update.
type UpdateWorkInput struct {
	ActorID   uuid.UUID
	ActorRole entity.Role

	ID         uuid.UUID
	WorkTypeID *uuid.UUID
	Quantity   *decimal.Decimal
	Date       *string // YYYY-MM-DD
	Notes      *string
	TagIDs     *[]uuid.UUID
}

// UpdateWorkOutput represents the output of work record update.
type UpdateWorkOutput struct {
	Work *entity.WorkWithDetails
}

// UpdateWorkUseCase handles work record update logic.
type UpdateWorkUseCase struct {
	workRepo          adapter.WorkRepository
	workTypeRepo      adapter.WorkTypeRepository
	tagRepo           adapter.TagRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewUpdateWorkUseCase creates a new UpdateWorkUseCase instance.
func NewUpdateWorkUseCase(
	workRepo adapter.WorkRepository,
	workTypeRepo adapter.WorkTypeRepository,
	tagRepo adapter.TagRepository,
	reportInvalidator adapter.ReportInvalidator,
) *UpdateWorkUseCase {
	return &UpdateWorkUseCase{
		workRepo:          workRepo,
		workTypeRepo:      workTypeRepo,
		tagRepo:           tagRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the work record update.
func (uc *UpdateWorkUseCase) Execute(ctx context.Context, input UpdateWorkInput) (*UpdateWorkOutput, error) {
	work, err := uc.workRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeWorkNotFound,
			"work record not found",
			domainerror.ErrWorkNotFound,
		)
	}

	if input.ActorRole == entity.RoleWorker && work.UserID != input.ActorID {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeNotAuthorizedWork,
			"workers may only modify their own work",
			domainerror.ErrNotAuthorizedToModifyWork,
		)
	}

	if input.WorkTypeID != nil {
		if _, err := uc.workTypeRepo.FindByID(ctx, *input.WorkTypeID); err != nil {
			return nil, domainerror.NewWorkError(
				domainerror.ErrCodeWorkTypeNotFound,
				"work type not found",
				domainerror.ErrWorkTypeNotFoundForWork,
			)
		}
		work.WorkTypeID = *input.WorkTypeID
	}

	if input.Quantity != nil {
		if !input.Quantity.IsPositive() {
			return nil, domainerror.NewWorkError(
				domainerror.ErrCodeInvalidWorkQuantity,
				"quantity must be positive",
				domainerror.ErrInvalidWorkQuantity,
			)
		}
		work.Quantity = *input.Quantity
	}

	if input.Date != nil {
		date, err := parseWorkDate(*input.Date)
		if err != nil {
			return nil, err
		}
		work.Date = date
	}

	if input.Notes != nil {
		if len(*input.Notes) > MaxNotesLength {
			return nil, domainerror.NewWorkError(
				domainerror.ErrCodeWorkNotesTooLong,
				fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
				domainerror.ErrWorkNotesTooLong,
			)
		}
		work.Notes = *input.Notes
	}

	if input.TagIDs != nil {
		if len(*input.TagIDs) > 0 {
			tags, err := uc.tagRepo.FindByIDs(ctx, *input.TagIDs)
			if err != nil {
				return nil, fmt.Errorf("failed to load tags: %w", err)
			}
			if len(tags) != len(*input.TagIDs) {
				return nil, domainerror.NewWorkError(
					domainerror.ErrCodeWorkTagNotFound,
					"one or more tags not found",
					domainerror.ErrTagNotFoundForWork,
				)
			}
		}
		work.TagIDs = *input.TagIDs
	}

	work.UpdatedAt = time.Now().UTC()
	if err := uc.workRepo.Update(ctx, work); err != nil {
		return nil, fmt.Errorf("failed to update work record: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)

	details, err := uc.workRepo.FindByIDWithDetails(ctx, work.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload work record: %w", err)
	}
	return &UpdateWorkOutput{Work: details}, nil
}

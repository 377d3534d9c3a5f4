// Package work contains work-record-related use cases.
package work

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

const (
	// MaxNotesLength is the maximum allowed length for work record notes.
	MaxNotesLength = 500
)

// CreateWorkInput represents the input for work record creation.
type CreateWorkInput struct {
	ActorID   uuid.UUID
	ActorRole entity.Role

	UserID     uuid.UUID // Worker the record belongs to
	WorkTypeID uuid.UUID
	Quantity   decimal.Decimal
	Date       string // YYYY-MM-DD
	Notes      string
	TagIDs     []uuid.UUID
}

// CreateWorkOutput represents the output of work record creation.
type CreateWorkOutput struct {
	Work *entity.WorkWithDetails
}

// CreateWorkUseCase handles work record creation logic.
type CreateWorkUseCase struct {
	workRepo          adapter.WorkRepository
	workTypeRepo      adapter.WorkTypeRepository
	tagRepo           adapter.TagRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewCreateWorkUseCase creates a new CreateWorkUseCase instance.
func NewCreateWorkUseCase(
	workRepo adapter.WorkRepository,
	workTypeRepo adapter.WorkTypeRepository,
	tagRepo adapter.TagRepository,
	reportInvalidator adapter.ReportInvalidator,
) *CreateWorkUseCase {
	return &CreateWorkUseCase{
		workRepo:          workRepo,
		workTypeRepo:      workTypeRepo,
		tagRepo:           tagRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the work record creation. Workers may only record work for
// themselves; admins and operators may record work for anyone.
func (uc *CreateWorkUseCase) Execute(ctx context.Context, input CreateWorkInput) (*CreateWorkOutput, error) {
	if input.ActorRole == entity.RoleWorker && input.ActorID != input.UserID {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeNotAuthorizedWork,
			"workers may only record their own work",
			domainerror.ErrNotAuthorizedToModifyWork,
		)
	}

	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeInvalidWorkQuantity,
			"quantity must be positive",
			domainerror.ErrInvalidWorkQuantity,
		)
	}

	date, err := parseWorkDate(input.Date)
	if err != nil {
		return nil, err
	}

	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeWorkNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrWorkNotesTooLong,
		)
	}

	workType, err := uc.workTypeRepo.FindByID(ctx, input.WorkTypeID)
	if err != nil {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeWorkTypeNotFound,
			"work type not found",
			domainerror.ErrWorkTypeNotFoundForWork,
		)
	}

	tags, err := uc.resolveTags(ctx, input.TagIDs)
	if err != nil {
		return nil, err
	}

	work := entity.NewWork(input.UserID, input.WorkTypeID, input.Quantity, date, input.Notes, input.TagIDs)
	if err := uc.workRepo.Create(ctx, work); err != nil {
		return nil, fmt.Errorf("failed to create work record: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)

	return &CreateWorkOutput{
		Work: &entity.WorkWithDetails{Work: work, WorkType: workType, Tags: tags},
	}, nil
}

// resolveTags loads the referenced tags, failing if any is missing.
func (uc *CreateWorkUseCase) resolveTags(ctx context.Context, ids []uuid.UUID) ([]*entity.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := uc.tagRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	if len(tags) != len(ids) {
		return nil, domainerror.NewWorkError(
			domainerror.ErrCodeWorkTagNotFound,
			"one or more tags not found",
			domainerror.ErrTagNotFoundForWork,
		)
	}
	return tags, nil
}

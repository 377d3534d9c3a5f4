package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// ChangeRoleInput represents the input for a role change.
type ChangeRoleInput struct {
	ActorRole entity.Role

	UserID uuid.UUID
	Role   entity.Role
}

// ChangeRoleOutput represents the output of a role change.
type ChangeRoleOutput struct {
	User *entity.User
}

// ChangeRoleUseCase handles role changes. Only admins may change roles, and
// the system always keeps at least one admin.
type ChangeRoleUseCase struct {
	userRepo adapter.UserRepository
}

// NewChangeRoleUseCase creates a new ChangeRoleUseCase instance.
func NewChangeRoleUseCase(userRepo adapter.UserRepository) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the role change.
func (uc *ChangeRoleUseCase) Execute(ctx context.Context, input ChangeRoleInput) (*ChangeRoleOutput, error) {
	if input.ActorRole != entity.RoleAdmin {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeNotAuthorizedRole,
			"only admins may change roles",
			domainerror.ErrNotAuthorizedToChangeRole,
		)
	}
	if !entity.IsValidRole(input.Role) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidRole,
			fmt.Sprintf("role must be one of %q, %q, %q", entity.RoleAdmin, entity.RoleOperator, entity.RoleWorker),
			domainerror.ErrInvalidRole,
		)
	}

	target, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if target.Role == input.Role {
		return &ChangeRoleOutput{User: target}, nil
	}

	if target.Role == entity.RoleAdmin {
		admins, err := uc.userRepo.CountByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeCannotDemoteLastAdmin,
				"cannot demote the last admin",
				domainerror.ErrCannotDemoteLastAdmin,
			)
		}
	}

	target.Role = input.Role
	target.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &ChangeRoleOutput{User: target}, nil
}

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users      map[uuid.UUID]*entity.User
	adminCount int64
	updated    *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.New("not found")
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.updated = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	return r.adminCount, nil
}

func userWithRole(role entity.Role) *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "someone@example.com",
		Name:  "Someone",
		Role:  role,
	}
}

func userErrorCode(t *testing.T, err error) domainerror.UserErrorCode {
	t.Helper()
	var userErr *domainerror.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected a user error, got %v", err)
	}
	return userErr.Code
}

func TestChangeRole(t *testing.T) {
	t.Run("non-admins may not change roles", func(t *testing.T) {
		uc := NewChangeRoleUseCase(&fakeUserRepo{})

		_, err := uc.Execute(context.Background(), ChangeRoleInput{
			ActorRole: entity.RoleOperator,
			UserID:    uuid.New(),
			Role:      entity.RoleWorker,
		})

		if code := userErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedRole {
			t.Errorf("expected NotAuthorizedRole, got %s", code)
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		uc := NewChangeRoleUseCase(&fakeUserRepo{})

		_, err := uc.Execute(context.Background(), ChangeRoleInput{
			ActorRole: entity.RoleAdmin,
			UserID:    uuid.New(),
			Role:      entity.Role("superuser"),
		})

		if code := userErrorCode(t, err); code != domainerror.ErrCodeInvalidRole {
			t.Errorf("expected InvalidRole, got %s", code)
		}
	})

	t.Run("refuses to demote the last admin", func(t *testing.T) {
		target := userWithRole(entity.RoleAdmin)
		repo := &fakeUserRepo{
			users:      map[uuid.UUID]*entity.User{target.ID: target},
			adminCount: 1,
		}
		uc := NewChangeRoleUseCase(repo)

		_, err := uc.Execute(context.Background(), ChangeRoleInput{
			ActorRole: entity.RoleAdmin,
			UserID:    target.ID,
			Role:      entity.RoleWorker,
		})

		if code := userErrorCode(t, err); code != domainerror.ErrCodeCannotDemoteLastAdmin {
			t.Errorf("expected CannotDemoteLastAdmin, got %s", code)
		}
		if repo.updated != nil {
			t.Error("expected no update to be persisted")
		}
	})

	t.Run("demotes an admin when another admin remains", func(t *testing.T) {
		target := userWithRole(entity.RoleAdmin)
		repo := &fakeUserRepo{
			users:      map[uuid.UUID]*entity.User{target.ID: target},
			adminCount: 2,
		}
		uc := NewChangeRoleUseCase(repo)

		output, err := uc.Execute(context.Background(), ChangeRoleInput{
			ActorRole: entity.RoleAdmin,
			UserID:    target.ID,
			Role:      entity.RoleOperator,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Role != entity.RoleOperator {
			t.Errorf("expected role operator, got %s", output.User.Role)
		}
		if repo.updated == nil {
			t.Error("expected the update to be persisted")
		}
	})

	t.Run("setting the same role is a no-op", func(t *testing.T) {
		target := userWithRole(entity.RoleWorker)
		repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{target.ID: target}}
		uc := NewChangeRoleUseCase(repo)

		output, err := uc.Execute(context.Background(), ChangeRoleInput{
			ActorRole: entity.RoleAdmin,
			UserID:    target.ID,
			Role:      entity.RoleWorker,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User != target {
			t.Error("expected the unchanged user back")
		}
		if repo.updated != nil {
			t.Error("expected no update to be persisted")
		}
	})
}

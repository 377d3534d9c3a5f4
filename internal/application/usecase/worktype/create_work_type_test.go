package worktype

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

type fakeWorkTypeRepo struct {
	existing map[string]bool
	created  *entity.WorkType
}

func (r *fakeWorkTypeRepo) Create(ctx context.Context, workType *entity.WorkType) error {
	r.created = workType
	return nil
}

func (r *fakeWorkTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkType, error) {
	return nil, errors.New("not found")
}

func (r *fakeWorkTypeRepo) FindAll(ctx context.Context) ([]*entity.WorkType, error) {
	return nil, nil
}

func (r *fakeWorkTypeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.existing[name], nil
}

func (r *fakeWorkTypeRepo) Update(ctx context.Context, workType *entity.WorkType) error {
	return nil
}

func (r *fakeWorkTypeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func workTypeErrorCode(t *testing.T, err error) domainerror.WorkTypeErrorCode {
	t.Helper()
	var wtErr *domainerror.WorkTypeError
	if !errors.As(err, &wtErr) {
		t.Fatalf("expected a work type error, got %v", err)
	}
	return wtErr.Code
}

func TestCreateWorkType(t *testing.T) {
	t.Run("creates a work type with a trimmed name", func(t *testing.T) {
		repo := &fakeWorkTypeRepo{}
		uc := NewCreateWorkTypeUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateWorkTypeInput{
			Name:         "  Pruning  ",
			PricePerUnit: decimal.RequireFromString("12.50"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.WorkType.Name != "Pruning" {
			t.Errorf("expected trimmed name, got %q", output.WorkType.Name)
		}
		if repo.created == nil {
			t.Error("expected the work type to be persisted")
		}
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		repo := &fakeWorkTypeRepo{existing: map[string]bool{"Pruning": true}}
		uc := NewCreateWorkTypeUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateWorkTypeInput{
			Name:         "Pruning",
			PricePerUnit: decimal.RequireFromString("12.50"),
		})

		if code := workTypeErrorCode(t, err); code != domainerror.ErrCodeWorkTypeNameExists {
			t.Errorf("expected WorkTypeNameExists, got %s", code)
		}
	})

	t.Run("rejects the group key delimiter in names", func(t *testing.T) {
		uc := NewCreateWorkTypeUseCase(&fakeWorkTypeRepo{})

		_, err := uc.Execute(context.Background(), CreateWorkTypeInput{
			Name:         "Pruning|North",
			PricePerUnit: decimal.RequireFromString("12.50"),
		})

		if code := workTypeErrorCode(t, err); code != domainerror.ErrCodeWorkTypeNameReserved {
			t.Errorf("expected WorkTypeNameReserved, got %s", code)
		}
	})

	t.Run("rejects an oversized name", func(t *testing.T) {
		uc := NewCreateWorkTypeUseCase(&fakeWorkTypeRepo{})

		_, err := uc.Execute(context.Background(), CreateWorkTypeInput{
			Name:         strings.Repeat("x", MaxWorkTypeNameLength+1),
			PricePerUnit: decimal.RequireFromString("12.50"),
		})

		if code := workTypeErrorCode(t, err); code != domainerror.ErrCodeWorkTypeNameTooLong {
			t.Errorf("expected WorkTypeNameTooLong, got %s", code)
		}
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		uc := NewCreateWorkTypeUseCase(&fakeWorkTypeRepo{})

		_, err := uc.Execute(context.Background(), CreateWorkTypeInput{
			Name:         "Pruning",
			PricePerUnit: decimal.Zero,
		})

		if code := workTypeErrorCode(t, err); code != domainerror.ErrCodeInvalidPricePerUnit {
			t.Errorf("expected InvalidPricePerUnit, got %s", code)
		}
	})
}

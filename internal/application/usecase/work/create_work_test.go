package work

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

type fakeWorkRepo struct {
	created *entity.Work
}

func (r *fakeWorkRepo) Create(ctx context.Context, work *entity.Work) error {
	r.created = work
	return nil
}

func (r *fakeWorkRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Work, error) {
	return nil, errors.New("not found")
}

func (r *fakeWorkRepo) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.WorkWithDetails, error) {
	return nil, errors.New("not found")
}

func (r *fakeWorkRepo) FindByFilter(ctx context.Context, filter adapter.WorkFilter, pagination adapter.WorkPagination) (*entity.WorkListResult, error) {
	return &entity.WorkListResult{}, nil
}

func (r *fakeWorkRepo) Update(ctx context.Context, work *entity.Work) error { return nil }
func (r *fakeWorkRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakeWorkRepo) CountByWorkType(ctx context.Context, workTypeID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeWorkRepo) CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeWorkTypeLookup struct {
	workTypes map[uuid.UUID]*entity.WorkType
}

func (r *fakeWorkTypeLookup) Create(ctx context.Context, workType *entity.WorkType) error {
	return nil
}

func (r *fakeWorkTypeLookup) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkType, error) {
	workType, ok := r.workTypes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return workType, nil
}

func (r *fakeWorkTypeLookup) FindAll(ctx context.Context) ([]*entity.WorkType, error) {
	return nil, nil
}

func (r *fakeWorkTypeLookup) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (r *fakeWorkTypeLookup) Update(ctx context.Context, workType *entity.WorkType) error {
	return nil
}

func (r *fakeWorkTypeLookup) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeTagLookup struct {
	tags map[uuid.UUID]*entity.Tag
}

func (r *fakeTagLookup) Create(ctx context.Context, tag *entity.Tag) error { return nil }

func (r *fakeTagLookup) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	tag, ok := r.tags[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return tag, nil
}

func (r *fakeTagLookup) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tag, error) {
	found := make([]*entity.Tag, 0, len(ids))
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok {
			found = append(found, tag)
		}
	}
	return found, nil
}

func (r *fakeTagLookup) FindAll(ctx context.Context) ([]*entity.Tag, error) { return nil, nil }

func (r *fakeTagLookup) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (r *fakeTagLookup) Update(ctx context.Context, tag *entity.Tag) error { return nil }
func (r *fakeTagLookup) Delete(ctx context.Context, id uuid.UUID) error    { return nil }

type fakeReportInvalidator struct {
	calls int
}

func (f *fakeReportInvalidator) InvalidateAll(ctx context.Context) error {
	f.calls++
	return nil
}

func workErrorCode(t *testing.T, err error) domainerror.WorkErrorCode {
	t.Helper()
	var workErr *domainerror.WorkError
	if !errors.As(err, &workErr) {
		t.Fatalf("expected a work error, got %v", err)
	}
	return workErr.Code
}

func newWorkFixture() (*fakeWorkRepo, *fakeWorkTypeLookup, *fakeTagLookup, *entity.WorkType) {
	workType := &entity.WorkType{
		ID:           uuid.New(),
		Name:         "Pruning",
		PricePerUnit: decimal.RequireFromString("12.50"),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	workRepo := &fakeWorkRepo{}
	workTypeRepo := &fakeWorkTypeLookup{workTypes: map[uuid.UUID]*entity.WorkType{workType.ID: workType}}
	tagRepo := &fakeTagLookup{tags: map[uuid.UUID]*entity.Tag{}}
	return workRepo, workTypeRepo, tagRepo, workType
}

func TestCreateWork(t *testing.T) {
	t.Run("a worker records work for themselves", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)
		workerID := uuid.New()

		output, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    workerID,
			ActorRole:  entity.RoleWorker,
			UserID:     workerID,
			WorkTypeID: workType.ID,
			Quantity:   decimal.RequireFromString("5.5"),
			Date:       "2026-03-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Work.Work.UserID != workerID {
			t.Errorf("expected the record to belong to the worker")
		}
		if workRepo.created == nil {
			t.Error("expected the record to be persisted")
		}
	})

	t.Run("drops cached reports after a record is created", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		invalidator := &fakeReportInvalidator{}
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, invalidator)
		workerID := uuid.New()

		_, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    workerID,
			ActorRole:  entity.RoleWorker,
			UserID:     workerID,
			WorkTypeID: workType.ID,
			Quantity:   decimal.RequireFromString("5"),
			Date:       "2026-03-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if invalidator.calls != 1 {
			t.Errorf("expected one cache invalidation, got %d", invalidator.calls)
		}
	})

	t.Run("a worker may not record work for someone else", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)

		_, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    uuid.New(),
			ActorRole:  entity.RoleWorker,
			UserID:     uuid.New(),
			WorkTypeID: workType.ID,
			Quantity:   decimal.RequireFromString("5"),
			Date:       "2026-03-10",
		})

		if code := workErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedWork {
			t.Errorf("expected NotAuthorizedWork, got %s", code)
		}
		if workRepo.created != nil {
			t.Error("expected nothing to be persisted")
		}
	})

	t.Run("an operator records work for another user", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)
		workerID := uuid.New()

		output, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    uuid.New(),
			ActorRole:  entity.RoleOperator,
			UserID:     workerID,
			WorkTypeID: workType.ID,
			Quantity:   decimal.RequireFromString("3"),
			Date:       "2026-03-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Work.Work.UserID != workerID {
			t.Errorf("expected the record to belong to the target worker")
		}
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)
		workerID := uuid.New()

		_, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    workerID,
			ActorRole:  entity.RoleWorker,
			UserID:     workerID,
			WorkTypeID: workType.ID,
			Quantity:   decimal.Zero,
			Date:       "2026-03-10",
		})

		if code := workErrorCode(t, err); code != domainerror.ErrCodeInvalidWorkQuantity {
			t.Errorf("expected InvalidWorkQuantity, got %s", code)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)
		workerID := uuid.New()

		_, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    workerID,
			ActorRole:  entity.RoleWorker,
			UserID:     workerID,
			WorkTypeID: workType.ID,
			Quantity:   decimal.RequireFromString("5"),
			Date:       "10/03/2026",
		})

		if code := workErrorCode(t, err); code != domainerror.ErrCodeInvalidWorkDate {
			t.Errorf("expected InvalidWorkDate, got %s", code)
		}
	})

	t.Run("rejects an unknown work type", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, _ := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)
		workerID := uuid.New()

		_, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    workerID,
			ActorRole:  entity.RoleWorker,
			UserID:     workerID,
			WorkTypeID: uuid.New(),
			Quantity:   decimal.RequireFromString("5"),
			Date:       "2026-03-10",
		})

		if code := workErrorCode(t, err); code != domainerror.ErrCodeWorkTypeNotFound {
			t.Errorf("expected WorkTypeNotFound, got %s", code)
		}
	})

	t.Run("rejects a reference to a missing tag", func(t *testing.T) {
		workRepo, workTypeRepo, tagRepo, workType := newWorkFixture()
		uc := NewCreateWorkUseCase(workRepo, workTypeRepo, tagRepo, nil)
		workerID := uuid.New()

		_, err := uc.Execute(context.Background(), CreateWorkInput{
			ActorID:    workerID,
			ActorRole:  entity.RoleWorker,
			UserID:     workerID,
			WorkTypeID: workType.ID,
			Quantity:   decimal.RequireFromString("5"),
			Date:       "2026-03-10",
			TagIDs:     []uuid.UUID{uuid.New()},
		})

		if code := workErrorCode(t, err); code != domainerror.ErrCodeWorkTagNotFound {
			t.Errorf("expected WorkTagNotFound, got %s", code)
		}
	})
}

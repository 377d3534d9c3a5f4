// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/persistence/model"
)

// workTypeRepository implements the adapter.WorkTypeRepository interface.
type workTypeRepository struct {
	db *gorm.DB
}

// NewWorkTypeRepository creates a new work type repository instance.
func NewWorkTypeRepository(db *gorm.DB) adapter.WorkTypeRepository {
	return &workTypeRepository{
		db: db,
	}
}

// Create creates a new work type in the database.
func (r *workTypeRepository) Create(ctx context.Context, workType *entity.WorkType) error {
	workTypeModel := model.WorkTypeFromEntity(workType)
	result := r.db.WithContext(ctx).Create(workTypeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a work type by its ID.
func (r *workTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkType, error) {
	var workTypeModel model.WorkTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&workTypeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWorkTypeNotFound
		}
		return nil, result.Error
	}
	return workTypeModel.ToEntity(), nil
}

// FindAll retrieves all work types ordered by name.
func (r *workTypeRepository) FindAll(ctx context.Context) ([]*entity.WorkType, error) {
	var workTypeModels []model.WorkTypeModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&workTypeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	workTypes := make([]*entity.WorkType, 0, len(workTypeModels))
	for i := range workTypeModels {
		workTypes = append(workTypes, workTypeModels[i].ToEntity())
	}
	return workTypes, nil
}

// ExistsByName checks if a work type with the given name exists.
func (r *workTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.WorkTypeModel{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing work type in the database.
func (r *workTypeRepository) Update(ctx context.Context, workType *entity.WorkType) error {
	workTypeModel := model.WorkTypeFromEntity(workType)
	result := r.db.WithContext(ctx).Save(workTypeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a work type from the database.
func (r *workTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// userWorkTypeRateRepository implements the adapter.UserWorkTypeRateRepository interface.
type userWorkTypeRateRepository struct {
	db *gorm.DB
}

// NewUserWorkTypeRateRepository creates a new personal rate repository instance.
func NewUserWorkTypeRateRepository(db *gorm.DB) adapter.UserWorkTypeRateRepository {
	return &userWorkTypeRateRepository{
		db: db,
	}
}

// Upsert creates or replaces the personal rate for a (user, work type) pair.
func (r *userWorkTypeRateRepository) Upsert(ctx context.Context, rate *entity.UserWorkTypeRate) error {
	rateModel := model.UserWorkTypeRateFromEntity(rate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND work_type_id = ?", rate.UserID, rate.WorkTypeID).
			Delete(&model.UserWorkTypeRateModel{})
		if result.Error != nil {
			return result.Error
		}
		return tx.Create(rateModel).Error
	})
}

// Find retrieves the personal rate for a (user, work type) pair.
func (r *userWorkTypeRateRepository) Find(ctx context.Context, userID, workTypeID uuid.UUID) (*entity.UserWorkTypeRate, error) {
	var rateModel model.UserWorkTypeRateModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND work_type_id = ?", userID, workTypeID).
		First(&rateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRateNotFound
		}
		return nil, result.Error
	}
	return rateModel.ToEntity(), nil
}

// FindByUser retrieves all personal rates for a user.
func (r *userWorkTypeRateRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserWorkTypeRate, error) {
	var rateModels []model.UserWorkTypeRateModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	rates := make([]*entity.UserWorkTypeRate, 0, len(rateModels))
	for i := range rateModels {
		rates = append(rates, rateModels[i].ToEntity())
	}
	return rates, nil
}

// Delete removes the personal rate for a (user, work type) pair.
func (r *userWorkTypeRateRepository) Delete(ctx context.Context, userID, workTypeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND work_type_id = ?", userID, workTypeID).
		Delete(&model.UserWorkTypeRateModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByWorkType removes all personal rates for a work type.
func (r *userWorkTypeRateRepository) DeleteByWorkType(ctx context.Context, workTypeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("work_type_id = ?", workTypeID).
		Delete(&model.UserWorkTypeRateModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/persistence/model"
)

// workRepository implements the adapter.WorkRepository interface.
type workRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates a new work repository instance.
func NewWorkRepository(db *gorm.DB) adapter.WorkRepository {
	return &workRepository{
		db: db,
	}
}

// Create creates a new work record and its tag rows in one transaction.
func (r *workRepository) Create(ctx context.Context, work *entity.Work) error {
	workModel := model.WorkFromEntity(work)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workModel).Error; err != nil {
			return err
		}
		return replaceWorkTags(tx, work.ID, work.TagIDs)
	})
}

// FindByID retrieves a work record by its ID.
func (r *workRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Work, error) {
	var workModel model.WorkModel
	result := r.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ?", id).
		First(&workModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWorkNotFound
		}
		return nil, result.Error
	}
	return workModel.ToEntity(), nil
}

// FindByIDWithDetails retrieves a work record with its work type and tags.
func (r *workRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.WorkWithDetails, error) {
	var workModel model.WorkModel
	result := r.db.WithContext(ctx).
		Preload("WorkType").
		Preload("Tags.Tag").
		Where("id = ?", id).
		First(&workModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWorkNotFound
		}
		return nil, result.Error
	}
	return toWorkWithDetails(&workModel), nil
}

// FindByFilter retrieves work records based on filter criteria with pagination.
func (r *workRepository) FindByFilter(ctx context.Context, filter adapter.WorkFilter, pagination adapter.WorkPagination) (*entity.WorkListResult, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.WorkModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	var workModels []model.WorkModel
	err := query.
		Preload("WorkType").
		Preload("Tags.Tag").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&workModels).Error
	if err != nil {
		return nil, err
	}

	works := make([]*entity.WorkWithDetails, 0, len(workModels))
	for i := range workModels {
		works = append(works, toWorkWithDetails(&workModels[i]))
	}

	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	return &entity.WorkListResult{
		Works:      works,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a work record and replaces its tag rows in one transaction.
func (r *workRepository) Update(ctx context.Context, work *entity.Work) error {
	workModel := model.WorkFromEntity(work)
	workModel.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(workModel).Error; err != nil {
			return err
		}
		return replaceWorkTags(tx, work.ID, work.TagIDs)
	})
}

// Delete soft-deletes a work record from the database.
func (r *workRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountByWorkType counts non-deleted work records referencing a work type.
func (r *workRepository) CountByWorkType(ctx context.Context, workTypeID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.WorkModel{}).
		Where("work_type_id = ?", workTypeID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByTag counts non-deleted work records referencing a tag.
func (r *workRepository) CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.WorkModel{}).
		Joins("JOIN work_tags ON work_tags.work_id = works.id").
		Where("work_tags.tag_id = ?", tagID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// applyFilter builds the WHERE clauses shared by Count and Find.
func (r *workRepository) applyFilter(query *gorm.DB, filter adapter.WorkFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("works.user_id = ?", *filter.UserID)
	}
	if filter.WorkTypeID != nil {
		query = query.Where("works.work_type_id = ?", *filter.WorkTypeID)
	}
	if filter.StartDate != nil {
		query = query.Where("works.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("works.date <= ?", *filter.EndDate)
	}
	if filter.TagID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM work_tags wt WHERE wt.work_id = works.id AND wt.tag_id = ?)",
			*filter.TagID,
		)
	}
	if filter.ExcludeTagID != nil {
		query = query.Where(
			"NOT EXISTS (SELECT 1 FROM work_tags wt WHERE wt.work_id = works.id AND wt.tag_id = ?)",
			*filter.ExcludeTagID,
		)
	}
	return query
}

// replaceWorkTags swaps the join rows for a work record.
func replaceWorkTags(tx *gorm.DB, workID uuid.UUID, tagIDs []uuid.UUID) error {
	if err := tx.Where("work_id = ?", workID).Delete(&model.WorkTagModel{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]model.WorkTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.WorkTagModel{WorkID: workID, TagID: tagID, CreatedAt: now})
	}
	return tx.Create(&rows).Error
}

// toWorkWithDetails maps a preloaded WorkModel to the details entity.
func toWorkWithDetails(m *model.WorkModel) *entity.WorkWithDetails {
	details := &entity.WorkWithDetails{
		Work: m.ToEntity(),
	}
	if m.WorkType != nil {
		details.WorkType = m.WorkType.ToEntity()
	}
	for _, wt := range m.Tags {
		if wt.Tag != nil {
			details.Tags = append(details.Tags, wt.Tag.ToEntity())
		}
	}
	return details
}

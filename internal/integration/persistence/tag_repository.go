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

// tagRepository implements the adapter.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(db *gorm.DB) adapter.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// Create creates a new tag in the database.
func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagModel := model.TagFromEntity(tag)
	result := r.db.WithContext(ctx).Create(tagModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tag by its ID.
func (r *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagModel model.TagModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tagModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTagNotFound
		}
		return nil, result.Error
	}
	return tagModel.ToEntity(), nil
}

// FindByIDs retrieves the tags matching the given IDs.
func (r *tagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tagModels []model.TagModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}
	tags := make([]*entity.Tag, 0, len(tagModels))
	for i := range tagModels {
		tags = append(tags, tagModels[i].ToEntity())
	}
	return tags, nil
}

// FindAll retrieves all tags ordered by name.
func (r *tagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []model.TagModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}
	tags := make([]*entity.Tag, 0, len(tagModels))
	for i := range tagModels {
		tags = append(tags, tagModels[i].ToEntity())
	}
	return tags, nil
}

// ExistsByName checks if a tag with the given name exists.
func (r *tagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TagModel{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing tag in the database.
func (r *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	tagModel := model.TagFromEntity(tag)
	result := r.db.WithContext(ctx).Save(tagModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a tag from the database.
func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TagModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

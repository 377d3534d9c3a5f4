// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/worktrack/backend/internal/domain/entity"
)

// WorkModel represents the works table in the database.
type WorkModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	WorkTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User     *UserModel      `gorm:"foreignKey:UserID;references:ID"`
	WorkType *WorkTypeModel  `gorm:"foreignKey:WorkTypeID;references:ID"`
	Tags     []*WorkTagModel `gorm:"foreignKey:WorkID;references:ID"`
}

// TableName returns the table name for the WorkModel.
func (WorkModel) TableName() string {
	return "works"
}

// ToEntity converts a WorkModel to a domain Work entity.
func (m *WorkModel) ToEntity() *entity.Work {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	tagIDs := make([]uuid.UUID, 0, len(m.Tags))
	for _, t := range m.Tags {
		tagIDs = append(tagIDs, t.TagID)
	}

	return &entity.Work{
		ID:         m.ID,
		UserID:     m.UserID,
		WorkTypeID: m.WorkTypeID,
		Quantity:   m.Quantity,
		Date:       m.Date,
		Notes:      m.Notes,
		TagIDs:     tagIDs,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// WorkFromEntity creates a WorkModel from a domain Work entity. Tag rows are
// managed separately by the repository.
func WorkFromEntity(work *entity.Work) *WorkModel {
	return &WorkModel{
		ID:         work.ID,
		UserID:     work.UserID,
		WorkTypeID: work.WorkTypeID,
		Quantity:   work.Quantity,
		Date:       work.Date,
		Notes:      work.Notes,
		CreatedAt:  work.CreatedAt,
		UpdatedAt:  work.UpdatedAt,
	}
}

// WorkTagModel represents the work_tags join table.
type WorkTagModel struct {
	WorkID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`

	Tag *TagModel `gorm:"foreignKey:TagID;references:ID"`
}

// TableName returns the table name for the WorkTagModel.
func (WorkTagModel) TableName() string {
	return "work_tags"
}

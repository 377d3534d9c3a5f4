// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/domain/entity"
)

// WorkTypeModel represents the work_types table in the database.
type WorkTypeModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the WorkTypeModel.
func (WorkTypeModel) TableName() string {
	return "work_types"
}

// ToEntity converts a WorkTypeModel to a domain WorkType entity.
func (m *WorkTypeModel) ToEntity() *entity.WorkType {
	return &entity.WorkType{
		ID:           m.ID,
		Name:         m.Name,
		PricePerUnit: m.PricePerUnit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// WorkTypeFromEntity creates a WorkTypeModel from a domain WorkType entity.
func WorkTypeFromEntity(workType *entity.WorkType) *WorkTypeModel {
	return &WorkTypeModel{
		ID:           workType.ID,
		Name:         workType.Name,
		PricePerUnit: workType.PricePerUnit,
		CreatedAt:    workType.CreatedAt,
		UpdatedAt:    workType.UpdatedAt,
	}
}

// UserWorkTypeRateModel represents the user_work_type_rates table. One row
// per (user, work type) pair holding the worker's personal multiplier figure.
type UserWorkTypeRateModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_work_type"`
	WorkTypeID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_work_type"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	WorkType *WorkTypeModel `gorm:"foreignKey:WorkTypeID;references:ID"`
}

// TableName returns the table name for the UserWorkTypeRateModel.
func (UserWorkTypeRateModel) TableName() string {
	return "user_work_type_rates"
}

// ToEntity converts a UserWorkTypeRateModel to a domain UserWorkTypeRate entity.
func (m *UserWorkTypeRateModel) ToEntity() *entity.UserWorkTypeRate {
	return &entity.UserWorkTypeRate{
		ID:           m.ID,
		UserID:       m.UserID,
		WorkTypeID:   m.WorkTypeID,
		PricePerUnit: m.PricePerUnit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserWorkTypeRateFromEntity creates a UserWorkTypeRateModel from a domain entity.
func UserWorkTypeRateFromEntity(rate *entity.UserWorkTypeRate) *UserWorkTypeRateModel {
	return &UserWorkTypeRateModel{
		ID:           rate.ID,
		UserID:       rate.UserID,
		WorkTypeID:   rate.WorkTypeID,
		PricePerUnit: rate.PricePerUnit,
		CreatedAt:    rate.CreatedAt,
		UpdatedAt:    rate.UpdatedAt,
	}
}

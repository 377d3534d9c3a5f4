// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkType represents a kind of billable work with its nominal price per unit.
// The calculator groups work records by (price per unit, type name).
type WorkType struct {
	ID           uuid.UUID
	Name         string
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewWorkType creates a new WorkType entity.
func NewWorkType(name string, pricePerUnit decimal.Decimal) *WorkType {
	now := time.Now().UTC()
	return &WorkType{
		ID:           uuid.New(),
		Name:         name,
		PricePerUnit: pricePerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserWorkTypeRate is a worker's personal multiplier figure for one work type,
// in operator units (the calculator divides it by the multiplier divisor to
// get the true ratio). Its presence is what makes a report row carry a
// personal multiplier.
type UserWorkTypeRate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	WorkTypeID   uuid.UUID
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUserWorkTypeRate creates a new personal rate entry.
func NewUserWorkTypeRate(userID, workTypeID uuid.UUID, pricePerUnit decimal.Decimal) *UserWorkTypeRate {
	now := time.Now().UTC()
	return &UserWorkTypeRate{
		ID:           uuid.New(),
		UserID:       userID,
		WorkTypeID:   workTypeID,
		PricePerUnit: pricePerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Work represents one recorded unit of work: a worker did some quantity of a
// work type on a date. Amounts are derived (quantity x price per unit); only
// the quantity is stored.
type Work struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WorkTypeID uuid.UUID
	Quantity   decimal.Decimal
	Date       time.Time
	Notes      string
	TagIDs     []uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewWork creates a new Work entity.
func NewWork(userID, workTypeID uuid.UUID, quantity decimal.Decimal, date time.Time, notes string, tagIDs []uuid.UUID) *Work {
	now := time.Now().UTC()
	return &Work{
		ID:         uuid.New(),
		UserID:     userID,
		WorkTypeID: workTypeID,
		Quantity:   quantity,
		Date:       date,
		Notes:      notes,
		TagIDs:     tagIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WorkWithDetails represents a work record with its related work type and tags.
type WorkWithDetails struct {
	Work     *Work
	WorkType *WorkType
	Tags     []*Tag
}

// WorkListResult represents the result of listing work records.
type WorkListResult struct {
	Works      []*WorkWithDetails
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

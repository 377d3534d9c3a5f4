// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale represents a dated sale. Sales are the income side of the profit
// figure reported alongside the calculator totals.
type Sale struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewSale creates a new Sale entity.
func NewSale(description string, amount decimal.Decimal, date time.Time) *Sale {
	now := time.Now().UTC()
	return &Sale{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

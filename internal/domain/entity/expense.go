// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a dated business expense. Expenses reduce the profit
// figure reported alongside the calculator totals.
type Expense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(description string, amount decimal.Decimal, date time.Time) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/domain/entity"
)

// LedgerFilter defines the date window for listing expenses or sales.
type LedgerFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses within the date window, newest first.
	FindByFilter(ctx context.Context, filter LedgerFilter) ([]*entity.Expense, error)

	// SumByFilter sums expense amounts within the date window.
	SumByFilter(ctx context.Context, filter LedgerFilter) (decimal.Decimal, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindByFilter retrieves sales within the date window, newest first.
	FindByFilter(ctx context.Context, filter LedgerFilter) ([]*entity.Sale, error)

	// SumByFilter sums sale amounts within the date window.
	SumByFilter(ctx context.Context, filter LedgerFilter) (decimal.Decimal, error)

	// Update updates an existing sale in the database.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete soft-deletes a sale from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

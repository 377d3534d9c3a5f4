// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/domain/entity"
)

// CreateLedgerEntryRequest represents the request body for creating an
// expense or a sale.
type CreateLedgerEntryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

// UpdateLedgerEntryRequest represents the request body for updating an
// expense or a sale.
type UpdateLedgerEntryRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// LedgerEntryResponse represents an expense or a sale in API responses.
type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LedgerListResponse represents the response for listing expenses or sales.
type LedgerListResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   string                `json:"total"`
}

// ToExpenseResponse converts a domain Expense entity to a LedgerEntryResponse DTO.
func ToExpenseResponse(expense *entity.Expense) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.StringFixed(2),
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToSaleResponse converts a domain Sale entity to a LedgerEntryResponse DTO.
func ToSaleResponse(sale *entity.Sale) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          sale.ID.String(),
		Description: sale.Description,
		Amount:      sale.Amount.StringFixed(2),
		Date:        sale.Date.Format("2006-01-02"),
		CreatedAt:   sale.CreatedAt,
		UpdatedAt:   sale.UpdatedAt,
	}
}

// ToExpenseListResponse converts expenses and their sum to a LedgerListResponse.
func ToExpenseListResponse(expenses []*entity.Expense, total decimal.Decimal) LedgerListResponse {
	entries := make([]LedgerEntryResponse, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, ToExpenseResponse(e))
	}
	return LedgerListResponse{Entries: entries, Total: total.StringFixed(2)}
}

// ToSaleListResponse converts sales and their sum to a LedgerListResponse.
func ToSaleListResponse(sales []*entity.Sale, total decimal.Decimal) LedgerListResponse {
	entries := make([]LedgerEntryResponse, 0, len(sales))
	for _, s := range sales {
		entries = append(entries, ToSaleResponse(s))
	}
	return LedgerListResponse{Entries: entries, Total: total.StringFixed(2)}
}

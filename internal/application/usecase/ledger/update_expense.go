package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Date        *string // YYYY-MM-DD
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo       adapter.ExpenseRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, reportInvalidator adapter.ReportInvalidator) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:       expenseRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *input.Amount
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		expense.Description = description
	}
	if input.Date != nil {
		date, err := parseLedgerDate(*input.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}

	expense.UpdatedAt = time.Now().UTC()
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return &UpdateExpenseOutput{Expense: expense}, nil
}

package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo       adapter.ExpenseRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, reportInvalidator adapter.ReportInvalidator) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:       expenseRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(input.Description)
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	date, err := parseLedgerDate(input.Date)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(description, input.Amount, date)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return &CreateExpenseOutput{Expense: expense}, nil
}

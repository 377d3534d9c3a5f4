package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo       adapter.ExpenseRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, reportInvalidator adapter.ReportInvalidator) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:       expenseRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute soft-deletes the expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if _, err := uc.expenseRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return nil
}

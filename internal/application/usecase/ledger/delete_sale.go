package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/adapter"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	ID uuid.UUID
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	saleRepo          adapter.SaleRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository, reportInvalidator adapter.ReportInvalidator) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:          saleRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute soft-deletes the sale.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	if _, err := uc.saleRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSaleNotFound,
			"sale not found",
			domainerror.ErrSaleNotFound,
		)
	}
	if err := uc.saleRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return nil
}

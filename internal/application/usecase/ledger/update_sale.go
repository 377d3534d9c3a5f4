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

// UpdateSaleInput represents the input for sale update.
type UpdateSaleInput struct {
	ID          uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Date        *string // YYYY-MM-DD
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale *entity.Sale
}

// UpdateSaleUseCase handles sale update logic.
type UpdateSaleUseCase struct {
	saleRepo          adapter.SaleRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository, reportInvalidator adapter.ReportInvalidator) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:          saleRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the sale update.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSaleNotFound,
			"sale not found",
			domainerror.ErrSaleNotFound,
		)
	}

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		sale.Amount = *input.Amount
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		sale.Description = description
	}
	if input.Date != nil {
		date, err := parseLedgerDate(*input.Date)
		if err != nil {
			return nil, err
		}
		sale.Date = date
	}

	sale.UpdatedAt = time.Now().UTC()
	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return &UpdateSaleOutput{Sale: sale}, nil
}

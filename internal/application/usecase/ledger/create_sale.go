package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	Description string
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase handles sale creation logic.
type CreateSaleUseCase struct {
	saleRepo          adapter.SaleRepository
	reportInvalidator adapter.ReportInvalidator
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository, reportInvalidator adapter.ReportInvalidator) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:          saleRepo,
		reportInvalidator: reportInvalidator,
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
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

	sale := entity.NewSale(description, input.Amount, date)
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	invalidateReports(ctx, uc.reportInvalidator)
	return &CreateSaleOutput{Sale: sale}, nil
}

package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ListSalesOutput represents the output of listing sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
	Total decimal.Decimal
}

// ListSalesUseCase handles listing sales within a date window.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute retrieves sales and their sum for the date window.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	filter := adapter.LedgerFilter{StartDate: input.StartDate, EndDate: input.EndDate}

	sales, err := uc.saleRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	total, err := uc.saleRepo.SumByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	return &ListSalesOutput{Sales: sales, Total: total}, nil
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/usecase/ledger"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles expense and sale endpoints.
type LedgerController struct {
	createExpenseUseCase *ledger.CreateExpenseUseCase
	listExpensesUseCase  *ledger.ListExpensesUseCase
	updateExpenseUseCase *ledger.UpdateExpenseUseCase
	deleteExpenseUseCase *ledger.DeleteExpenseUseCase
	createSaleUseCase    *ledger.CreateSaleUseCase
	listSalesUseCase     *ledger.ListSalesUseCase
	updateSaleUseCase    *ledger.UpdateSaleUseCase
	deleteSaleUseCase    *ledger.DeleteSaleUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	createExpenseUseCase *ledger.CreateExpenseUseCase,
	listExpensesUseCase *ledger.ListExpensesUseCase,
	updateExpenseUseCase *ledger.UpdateExpenseUseCase,
	deleteExpenseUseCase *ledger.DeleteExpenseUseCase,
	createSaleUseCase *ledger.CreateSaleUseCase,
	listSalesUseCase *ledger.ListSalesUseCase,
	updateSaleUseCase *ledger.UpdateSaleUseCase,
	deleteSaleUseCase *ledger.DeleteSaleUseCase,
) *LedgerController {
	return &LedgerController{
		createExpenseUseCase: createExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		updateExpenseUseCase: updateExpenseUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		createSaleUseCase:    createSaleUseCase,
		listSalesUseCase:     listSalesUseCase,
		updateSaleUseCase:    updateSaleUseCase,
		deleteSaleUseCase:    deleteSaleUseCase,
	}
}

// CreateExpense handles POST /expenses requests.
func (c *LedgerController) CreateExpense(ctx *gin.Context) {
	req, amount, ok := c.bindCreateRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), ledger.CreateExpenseInput{
		Description: req.Description,
		Amount:      amount,
		Date:        req.Date,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// ListExpenses handles GET /expenses requests.
func (c *LedgerController) ListExpenses(ctx *gin.Context) {
	startDate, endDate, ok := c.bindDateWindow(ctx)
	if !ok {
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), ledger.ListExpensesInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses, output.Total))
}

// UpdateExpense handles PATCH /expenses/:id requests.
func (c *LedgerController) UpdateExpense(ctx *gin.Context) {
	entryID, req, amount, ok := c.bindUpdateRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), ledger.UpdateExpenseInput{
		ID:          entryID,
		Description: req.Description,
		Amount:      amount,
		Date:        req.Date,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// DeleteExpense handles DELETE /expenses/:id requests.
func (c *LedgerController) DeleteExpense(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid expense ID format"})
		return
	}

	if err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), ledger.DeleteExpenseInput{ID: entryID}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateSale handles POST /sales requests.
func (c *LedgerController) CreateSale(ctx *gin.Context) {
	req, amount, ok := c.bindCreateRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createSaleUseCase.Execute(ctx.Request.Context(), ledger.CreateSaleInput{
		Description: req.Description,
		Amount:      amount,
		Date:        req.Date,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// ListSales handles GET /sales requests.
func (c *LedgerController) ListSales(ctx *gin.Context) {
	startDate, endDate, ok := c.bindDateWindow(ctx)
	if !ok {
		return
	}

	output, err := c.listSalesUseCase.Execute(ctx.Request.Context(), ledger.ListSalesInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales, output.Total))
}

// UpdateSale handles PATCH /sales/:id requests.
func (c *LedgerController) UpdateSale(ctx *gin.Context) {
	entryID, req, amount, ok := c.bindUpdateRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateSaleUseCase.Execute(ctx.Request.Context(), ledger.UpdateSaleInput{
		ID:          entryID,
		Description: req.Description,
		Amount:      amount,
		Date:        req.Date,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// DeleteSale handles DELETE /sales/:id requests.
func (c *LedgerController) DeleteSale(ctx *gin.Context) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid sale ID format"})
		return
	}

	if err := c.deleteSaleUseCase.Execute(ctx.Request.Context(), ledger.DeleteSaleInput{ID: entryID}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindCreateRequest binds and validates the shared create payload for
// expenses and sales.
func (c *LedgerController) bindCreateRequest(ctx *gin.Context) (dto.CreateLedgerEntryRequest, decimal.Decimal, bool) {
	var req dto.CreateLedgerEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return req, decimal.Zero, false
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount must be a decimal number",
			Code:  string(domainerror.ErrCodeInvalidLedgerAmount),
		})
		return req, decimal.Zero, false
	}
	return req, amount, true
}

// bindUpdateRequest binds and validates the shared update payload for
// expenses and sales.
func (c *LedgerController) bindUpdateRequest(ctx *gin.Context) (uuid.UUID, dto.UpdateLedgerEntryRequest, *decimal.Decimal, bool) {
	var req dto.UpdateLedgerEntryRequest

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid entry ID format"})
		return uuid.Nil, req, nil, false
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return uuid.Nil, req, nil, false
	}

	var amount *decimal.Decimal
	if req.Amount != nil {
		parsed, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "amount must be a decimal number",
				Code:  string(domainerror.ErrCodeInvalidLedgerAmount),
			})
			return uuid.Nil, req, nil, false
		}
		amount = &parsed
	}
	return entryID, req, amount, true
}

// bindDateWindow parses the optional start_date and end_date query params.
func (c *LedgerController) bindDateWindow(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	var startDate, endDate *time.Time
	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidLedgerDate),
			})
			return nil, nil, false
		}
		startDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidLedgerDate),
			})
			return nil, nil, false
		}
		endDate = &end
	}
	return startDate, endDate, true
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := c.getStatusCodeForLedgerError(ledgerErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound, domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidLedgerAmount,
		domainerror.ErrCodeInvalidLedgerDate,
		domainerror.ErrCodeLedgerDescriptionTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

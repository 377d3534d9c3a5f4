// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/usecase/calculator"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/entrypoint/dto"
	"github.com/worktrack/backend/internal/integration/entrypoint/middleware"
)

// CalculatorController handles calculator report endpoints.
type CalculatorController struct {
	getReportUseCase    *calculator.GetReportUseCase
	setOverridesUseCase *calculator.SetOverridesUseCase
	applyUseCase        *calculator.ApplyOverridesUseCase
	toggleUseCase       *calculator.ToggleGroupUseCase
}

// NewCalculatorController creates a new calculator controller instance.
func NewCalculatorController(
	getReportUseCase *calculator.GetReportUseCase,
	setOverridesUseCase *calculator.SetOverridesUseCase,
	applyUseCase *calculator.ApplyOverridesUseCase,
	toggleUseCase *calculator.ToggleGroupUseCase,
) *CalculatorController {
	return &CalculatorController{
		getReportUseCase:    getReportUseCase,
		setOverridesUseCase: setOverridesUseCase,
		applyUseCase:        applyUseCase,
		toggleUseCase:       toggleUseCase,
	}
}

// GetReport handles GET /calculator/report requests. Each fetch replaces the
// caller's report session; pending overrides from the previous fetch are gone.
func (c *CalculatorController) GetReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fromDate, err := time.Parse("2006-01-02", ctx.Query("from_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "from_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidCalcDateRange),
		})
		return
	}
	toDate, err := time.Parse("2006-01-02", ctx.Query("to_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "to_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidCalcDateRange),
		})
		return
	}

	input := calculator.GetReportInput{
		UserID:   userID,
		FromDate: fromDate,
		ToDate:   toDate,
	}
	if tagIDStr := ctx.Query("tag_id"); tagIDStr != "" {
		tagID, err := uuid.Parse(tagIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tag_id format"})
			return
		}
		input.TagID = &tagID
	}
	if excludeStr := ctx.Query("exclude_tag_id"); excludeStr != "" {
		excludeID, err := uuid.Parse(excludeStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid exclude_tag_id format"})
			return
		}
		input.ExcludeTagID = &excludeID
	}

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalculatorReportResponse(output.State))
}

// SetOverrides handles POST /calculator/overrides requests. Overrides are
// stored only; totals change when the client requests a recalculation.
func (c *CalculatorController) SetOverrides(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetOverridesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := calculator.SetOverridesInput{UserID: userID}
	for _, gp := range req.GroupPrices {
		input.GroupPrices = append(input.GroupPrices, calculator.GroupPriceEdit{
			GroupToken: gp.GroupToken,
			Price:      gp.Price,
		})
	}
	for _, uo := range req.UserOverrides {
		targetID, err := uuid.Parse(uo.UserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user_id format"})
			return
		}
		input.UserEdits = append(input.UserEdits, calculator.UserEdit{
			GroupToken: uo.GroupToken,
			UserID:     targetID,
			Price:      uo.Price,
			Multiplier: uo.Multiplier,
		})
	}

	output, err := c.setOverridesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SetOverridesResponse{
		InvalidFields: dto.ToInvalidFieldResponses(output.InvalidFields),
	})
}

// Recalculate handles POST /calculator/recalculate requests.
func (c *CalculatorController) Recalculate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), calculator.ApplyOverridesInput{UserID: userID})
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecalculateResponse{
		Report:        dto.ToCalculatorReportResponse(output.State),
		InvalidFields: dto.ToInvalidFieldResponses(output.InvalidFields),
	})
}

// ToggleGroup handles POST /calculator/groups/toggle requests.
func (c *CalculatorController) ToggleGroup(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ToggleGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), calculator.ToggleGroupInput{
		UserID:     userID,
		GroupToken: req.GroupToken,
	})
	if err != nil {
		c.handleCalculatorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleGroupResponse{
		GroupToken: output.GroupToken,
		Collapsed:  output.Collapsed,
	})
}

// handleCalculatorError handles calculator errors and returns appropriate HTTP responses.
func (c *CalculatorController) handleCalculatorError(ctx *gin.Context, err error) {
	var calcErr *domainerror.CalculatorError
	if errors.As(err, &calcErr) {
		statusCode := c.getStatusCodeForCalculatorError(calcErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: calcErr.Message,
			Code:  string(calcErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCalculatorError maps calculator error codes to HTTP status codes.
func (c *CalculatorController) getStatusCodeForCalculatorError(code domainerror.CalculatorErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCalcDateRange:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownGroup:
		return http.StatusNotFound
	case domainerror.ErrCodeNoReportSession:
		return http.StatusConflict
	case domainerror.ErrCodeMalformedGroupKey,
		domainerror.ErrCodeDuplicateGroupKey,
		domainerror.ErrCodeZeroBaselinePrice:
		// Data-integrity failures in the raw payload fail the whole fetch.
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

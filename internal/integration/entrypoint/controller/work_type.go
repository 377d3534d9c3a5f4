// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/usecase/worktype"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/entrypoint/dto"
)

// WorkTypeController handles work type endpoints.
type WorkTypeController struct {
	listUseCase      *worktype.ListWorkTypesUseCase
	createUseCase    *worktype.CreateWorkTypeUseCase
	updateUseCase    *worktype.UpdateWorkTypeUseCase
	deleteUseCase    *worktype.DeleteWorkTypeUseCase
	setRateUseCase   *worktype.SetUserRateUseCase
	clearRateUseCase *worktype.ClearUserRateUseCase
}

// NewWorkTypeController creates a new work type controller instance.
func NewWorkTypeController(
	listUseCase *worktype.ListWorkTypesUseCase,
	createUseCase *worktype.CreateWorkTypeUseCase,
	updateUseCase *worktype.UpdateWorkTypeUseCase,
	deleteUseCase *worktype.DeleteWorkTypeUseCase,
	setRateUseCase *worktype.SetUserRateUseCase,
	clearRateUseCase *worktype.ClearUserRateUseCase,
) *WorkTypeController {
	return &WorkTypeController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		setRateUseCase:   setRateUseCase,
		clearRateUseCase: clearRateUseCase,
	}
}

// List handles GET /work-types requests.
func (c *WorkTypeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleWorkTypeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToWorkTypeListResponse(output.WorkTypes))
}

// Create handles POST /work-types requests.
func (c *WorkTypeController) Create(ctx *gin.Context) {
	var req dto.CreateWorkTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	price, err := decimal.NewFromString(req.PricePerUnit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "price_per_unit must be a decimal number",
			Code:  string(domainerror.ErrCodeInvalidPricePerUnit),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), worktype.CreateWorkTypeInput{
		Name:         req.Name,
		PricePerUnit: price,
	})
	if err != nil {
		c.handleWorkTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWorkTypeResponse(output.WorkType))
}

// Update handles PATCH /work-types/:id requests.
func (c *WorkTypeController) Update(ctx *gin.Context) {
	workTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work type ID format"})
		return
	}

	var req dto.UpdateWorkTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := worktype.UpdateWorkTypeInput{ID: workTypeID, Name: req.Name}
	if req.PricePerUnit != nil {
		price, err := decimal.NewFromString(*req.PricePerUnit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "price_per_unit must be a decimal number",
				Code:  string(domainerror.ErrCodeInvalidPricePerUnit),
			})
			return
		}
		input.PricePerUnit = &price
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkTypeResponse(output.WorkType))
}

// Delete handles DELETE /work-types/:id requests.
func (c *WorkTypeController) Delete(ctx *gin.Context) {
	workTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work type ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), worktype.DeleteWorkTypeInput{ID: workTypeID}); err != nil {
		c.handleWorkTypeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetUserRate handles PUT /work-types/:id/rates requests.
func (c *WorkTypeController) SetUserRate(ctx *gin.Context) {
	workTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work type ID format"})
		return
	}

	var req dto.SetUserRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	targetUserID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user_id format"})
		return
	}
	price, err := decimal.NewFromString(req.PricePerUnit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "price_per_unit must be a decimal number",
			Code:  string(domainerror.ErrCodeInvalidPricePerUnit),
		})
		return
	}

	output, err := c.setRateUseCase.Execute(ctx.Request.Context(), worktype.SetUserRateInput{
		UserID:       targetUserID,
		WorkTypeID:   workTypeID,
		PricePerUnit: price,
	})
	if err != nil {
		c.handleWorkTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserRateResponse(output.Rate))
}

// ClearUserRate handles DELETE /work-types/:id/rates/:userId requests.
func (c *WorkTypeController) ClearUserRate(ctx *gin.Context) {
	workTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work type ID format"})
		return
	}
	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user ID format"})
		return
	}

	err = c.clearRateUseCase.Execute(ctx.Request.Context(), worktype.ClearUserRateInput{
		UserID:     targetUserID,
		WorkTypeID: workTypeID,
	})
	if err != nil {
		c.handleWorkTypeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleWorkTypeError handles work type errors and returns appropriate HTTP responses.
func (c *WorkTypeController) handleWorkTypeError(ctx *gin.Context, err error) {
	var wtErr *domainerror.WorkTypeError
	if errors.As(err, &wtErr) {
		statusCode := c.getStatusCodeForWorkTypeError(wtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: wtErr.Message,
			Code:  string(wtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWorkTypeError maps work type error codes to HTTP status codes.
func (c *WorkTypeController) getStatusCodeForWorkTypeError(code domainerror.WorkTypeErrorCode) int {
	switch code {
	case domainerror.ErrCodeWorkTypeNotFoundWT, domainerror.ErrCodeRateNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeWorkTypeNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeWorkTypeInUse:
		return http.StatusConflict
	case domainerror.ErrCodeWorkTypeNameTooLong,
		domainerror.ErrCodeWorkTypeNameReserved,
		domainerror.ErrCodeInvalidPricePerUnit:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

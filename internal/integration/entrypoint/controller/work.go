// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/application/usecase/work"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/entrypoint/dto"
	"github.com/worktrack/backend/internal/integration/entrypoint/middleware"
)

// WorkController handles work record endpoints.
type WorkController struct {
	createUseCase *work.CreateWorkUseCase
	listUseCase   *work.ListWorksUseCase
	updateUseCase *work.UpdateWorkUseCase
	deleteUseCase *work.DeleteWorkUseCase
}

// NewWorkController creates a new work controller instance.
func NewWorkController(
	createUseCase *work.CreateWorkUseCase,
	listUseCase *work.ListWorksUseCase,
	updateUseCase *work.UpdateWorkUseCase,
	deleteUseCase *work.DeleteWorkUseCase,
) *WorkController {
	return &WorkController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /works requests. When user_id is omitted the record is
// created for the caller.
func (c *WorkController) Create(ctx *gin.Context) {
	actorID, actorRole, ok := c.actor(ctx)
	if !ok {
		return
	}

	var req dto.CreateWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "quantity must be a decimal number",
			Code:  string(domainerror.ErrCodeInvalidWorkQuantity),
		})
		return
	}

	workTypeID, err := uuid.Parse(req.WorkTypeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work_type_id format"})
		return
	}

	targetUserID := actorID
	if req.UserID != "" {
		targetUserID, err = uuid.Parse(req.UserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user_id format"})
			return
		}
	}

	tagIDs, err := parseUUIDs(req.TagIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tag_ids format"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), work.CreateWorkInput{
		ActorID:    actorID,
		ActorRole:  actorRole,
		UserID:     targetUserID,
		WorkTypeID: workTypeID,
		Quantity:   quantity,
		Date:       req.Date,
		Notes:      req.Notes,
		TagIDs:     tagIDs,
	})
	if err != nil {
		c.handleWorkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWorkResponse(output.Work))
}

// List handles GET /works requests.
func (c *WorkController) List(ctx *gin.Context) {
	actorID, actorRole, ok := c.actor(ctx)
	if !ok {
		return
	}

	input := work.ListWorksInput{ActorID: actorID, ActorRole: actorRole}

	if userIDStr := ctx.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user_id format"})
			return
		}
		input.UserID = &userID
	}
	if workTypeIDStr := ctx.Query("work_type_id"); workTypeIDStr != "" {
		workTypeID, err := uuid.Parse(workTypeIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work_type_id format"})
			return
		}
		input.WorkTypeID = &workTypeID
	}
	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "start_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidWorkDate),
			})
			return
		}
		input.StartDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "end_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidWorkDate),
			})
			return
		}
		input.EndDate = &end
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
	if pageStr := ctx.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "page must be a positive integer"})
			return
		}
		input.Page = page
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkListResponse(output.Result))
}

// Update handles PATCH /works/:id requests.
func (c *WorkController) Update(ctx *gin.Context) {
	actorID, actorRole, ok := c.actor(ctx)
	if !ok {
		return
	}

	workID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work ID format"})
		return
	}

	var req dto.UpdateWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := work.UpdateWorkInput{
		ActorID:   actorID,
		ActorRole: actorRole,
		ID:        workID,
		Date:      req.Date,
		Notes:     req.Notes,
	}
	if req.WorkTypeID != nil {
		workTypeID, err := uuid.Parse(*req.WorkTypeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work_type_id format"})
			return
		}
		input.WorkTypeID = &workTypeID
	}
	if req.Quantity != nil {
		quantity, err := decimal.NewFromString(*req.Quantity)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "quantity must be a decimal number",
				Code:  string(domainerror.ErrCodeInvalidWorkQuantity),
			})
			return
		}
		input.Quantity = &quantity
	}
	if req.TagIDs != nil {
		tagIDs, err := parseUUIDs(*req.TagIDs)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tag_ids format"})
			return
		}
		input.TagIDs = &tagIDs
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkResponse(output.Work))
}

// Delete handles DELETE /works/:id requests.
func (c *WorkController) Delete(ctx *gin.Context) {
	actorID, actorRole, ok := c.actor(ctx)
	if !ok {
		return
	}

	workID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid work ID format"})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), work.DeleteWorkInput{
		ActorID:   actorID,
		ActorRole: actorRole,
		ID:        workID,
	})
	if err != nil {
		c.handleWorkError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// actor extracts the authenticated caller's ID and role from the context.
func (c *WorkController) actor(ctx *gin.Context) (uuid.UUID, entity.Role, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, "", false
	}
	return userID, role, true
}

// parseUUIDs parses a slice of UUID strings, failing on the first invalid one.
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// handleWorkError handles work errors and returns appropriate HTTP responses.
func (c *WorkController) handleWorkError(ctx *gin.Context, err error) {
	var workErr *domainerror.WorkError
	if errors.As(err, &workErr) {
		statusCode := c.getStatusCodeForWorkError(workErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: workErr.Message,
			Code:  string(workErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWorkError maps work error codes to HTTP status codes.
func (c *WorkController) getStatusCodeForWorkError(code domainerror.WorkErrorCode) int {
	switch code {
	case domainerror.ErrCodeWorkNotFound,
		domainerror.ErrCodeWorkTypeNotFound,
		domainerror.ErrCodeWorkTagNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedWork:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidWorkQuantity,
		domainerror.ErrCodeInvalidWorkDate,
		domainerror.ErrCodeWorkNotesTooLong,
		domainerror.ErrCodeMissingWorkFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

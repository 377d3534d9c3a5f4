// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/worktrack/backend/internal/application/usecase/tag"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/entrypoint/dto"
)

// TagController handles tag endpoints.
type TagController struct {
	listUseCase   *tag.ListTagsUseCase
	createUseCase *tag.CreateTagUseCase
	updateUseCase *tag.UpdateTagUseCase
	deleteUseCase *tag.DeleteTagUseCase
}

// NewTagController creates a new tag controller instance.
func NewTagController(
	listUseCase *tag.ListTagsUseCase,
	createUseCase *tag.CreateTagUseCase,
	updateUseCase *tag.UpdateTagUseCase,
	deleteUseCase *tag.DeleteTagUseCase,
) *TagController {
	return &TagController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tags requests.
func (c *TagController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTagError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTagListResponse(output.Tags))
}

// Create handles POST /tags requests.
func (c *TagController) Create(ctx *gin.Context) {
	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tag.CreateTagInput{Name: req.Name})
	if err != nil {
		c.handleTagError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTagResponse(output.Tag))
}

// Update handles PATCH /tags/:id requests.
func (c *TagController) Update(ctx *gin.Context) {
	tagID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tag ID format"})
		return
	}

	var req dto.UpdateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), tag.UpdateTagInput{
		ID:   tagID,
		Name: req.Name,
	})
	if err != nil {
		c.handleTagError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponse(output.Tag))
}

// Delete handles DELETE /tags/:id requests.
func (c *TagController) Delete(ctx *gin.Context) {
	tagID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid tag ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), tag.DeleteTagInput{ID: tagID}); err != nil {
		c.handleTagError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTagError handles tag errors and returns appropriate HTTP responses.
func (c *TagController) handleTagError(ctx *gin.Context, err error) {
	var tagErr *domainerror.TagError
	if errors.As(err, &tagErr) {
		statusCode := c.getStatusCodeForTagError(tagErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tagErr.Message,
			Code:  string(tagErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTagError maps tag error codes to HTTP status codes.
func (c *TagController) getStatusCodeForTagError(code domainerror.TagErrorCode) int {
	switch code {
	case domainerror.ErrCodeTagNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTagNameExists, domainerror.ErrCodeTagInUse:
		return http.StatusConflict
	case domainerror.ErrCodeTagNameTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

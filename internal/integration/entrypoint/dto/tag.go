// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/worktrack/backend/internal/domain/entity"
)

// CreateTagRequest represents the request body for tag creation.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateTagRequest represents the request body for tag update.
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// TagResponse represents a single tag in API responses.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagListResponse represents the response for listing tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToTagResponse converts a domain Tag entity to a TagResponse DTO.
func ToTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID.String(),
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// ToTagListResponse converts tags to a TagListResponse DTO.
func ToTagListResponse(tags []*entity.Tag) TagListResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, ToTagResponse(t))
	}
	return TagListResponse{Tags: responses}
}

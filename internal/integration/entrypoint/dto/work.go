// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/worktrack/backend/internal/domain/entity"
)

// CreateWorkRequest represents the request body for work record creation.
type CreateWorkRequest struct {
	UserID     string   `json:"user_id,omitempty" binding:"omitempty,uuid"`
	WorkTypeID string   `json:"work_type_id" binding:"required,uuid"`
	Quantity   string   `json:"quantity" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Notes      string   `json:"notes,omitempty"`
	TagIDs     []string `json:"tag_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdateWorkRequest represents the request body for work record update.
type UpdateWorkRequest struct {
	WorkTypeID *string   `json:"work_type_id,omitempty" binding:"omitempty,uuid"`
	Quantity   *string   `json:"quantity,omitempty"`
	Date       *string   `json:"date,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	TagIDs     *[]string `json:"tag_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// WorkResponse represents a single work record in API responses.
type WorkResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	WorkType  *WorkTypeResponse `json:"work_type,omitempty"`
	Quantity  string            `json:"quantity"`
	Date      string            `json:"date"`
	Notes     string            `json:"notes,omitempty"`
	Tags      []TagResponse     `json:"tags"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// WorkListResponse represents the response for listing work records.
type WorkListResponse struct {
	Works      []WorkResponse `json:"works"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ToWorkResponse converts a WorkWithDetails to a WorkResponse DTO.
func ToWorkResponse(details *entity.WorkWithDetails) WorkResponse {
	resp := WorkResponse{
		ID:        details.Work.ID.String(),
		UserID:    details.Work.UserID.String(),
		Quantity:  details.Work.Quantity.String(),
		Date:      details.Work.Date.Format("2006-01-02"),
		Notes:     details.Work.Notes,
		Tags:      make([]TagResponse, 0, len(details.Tags)),
		CreatedAt: details.Work.CreatedAt,
		UpdatedAt: details.Work.UpdatedAt,
	}
	if details.WorkType != nil {
		workType := ToWorkTypeResponse(details.WorkType)
		resp.WorkType = &workType
	}
	for _, tag := range details.Tags {
		resp.Tags = append(resp.Tags, ToTagResponse(tag))
	}
	return resp
}

// ToWorkListResponse converts a WorkListResult to a WorkListResponse DTO.
func ToWorkListResponse(result *entity.WorkListResult) WorkListResponse {
	works := make([]WorkResponse, 0, len(result.Works))
	for _, w := range result.Works {
		works = append(works, ToWorkResponse(w))
	}
	return WorkListResponse{
		Works:      works,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}

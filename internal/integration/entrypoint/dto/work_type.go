// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/worktrack/backend/internal/domain/entity"
)

// CreateWorkTypeRequest represents the request body for work type creation.
type CreateWorkTypeRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	PricePerUnit string `json:"price_per_unit" binding:"required"`
}

// UpdateWorkTypeRequest represents the request body for work type update.
type UpdateWorkTypeRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	PricePerUnit *string `json:"price_per_unit,omitempty"`
}

// SetUserRateRequest represents the request body for setting a personal rate.
type SetUserRateRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	PricePerUnit string `json:"price_per_unit" binding:"required"`
}

// WorkTypeResponse represents a single work type in API responses.
type WorkTypeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PricePerUnit string    `json:"price_per_unit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WorkTypeListResponse represents the response for listing work types.
type WorkTypeListResponse struct {
	WorkTypes []WorkTypeResponse `json:"work_types"`
}

// UserRateResponse represents a personal rate in API responses.
type UserRateResponse struct {
	UserID       string `json:"user_id"`
	WorkTypeID   string `json:"work_type_id"`
	PricePerUnit string `json:"price_per_unit"`
}

// ToWorkTypeResponse converts a domain WorkType entity to a WorkTypeResponse DTO.
func ToWorkTypeResponse(workType *entity.WorkType) WorkTypeResponse {
	return WorkTypeResponse{
		ID:           workType.ID.String(),
		Name:         workType.Name,
		PricePerUnit: workType.PricePerUnit.StringFixed(2),
		CreatedAt:    workType.CreatedAt,
		UpdatedAt:    workType.UpdatedAt,
	}
}

// ToWorkTypeListResponse converts work types to a WorkTypeListResponse DTO.
func ToWorkTypeListResponse(workTypes []*entity.WorkType) WorkTypeListResponse {
	responses := make([]WorkTypeResponse, 0, len(workTypes))
	for _, wt := range workTypes {
		responses = append(responses, ToWorkTypeResponse(wt))
	}
	return WorkTypeListResponse{WorkTypes: responses}
}

// ToUserRateResponse converts a domain UserWorkTypeRate to a UserRateResponse DTO.
func ToUserRateResponse(rate *entity.UserWorkTypeRate) UserRateResponse {
	return UserRateResponse{
		UserID:       rate.UserID.String(),
		WorkTypeID:   rate.WorkTypeID.String(),
		PricePerUnit: rate.PricePerUnit.StringFixed(2),
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/worktrack/backend/internal/application/usecase/calculator"
)

// CalculatorUserResponse represents one user row inside a report group. All
// money fields are fixed to two decimal places on the wire.
type CalculatorUserResponse struct {
	UserID                   string  `json:"user_id"`
	UserName                 string  `json:"user_name"`
	GroupPricePerUnit        string  `json:"group_price_per_unit"`
	TotalAmount              string  `json:"total_amount"`
	UserWorkTypePricePerUnit *string `json:"user_work_type_price_per_unit,omitempty"`
	UpdatedTotalAmount       string  `json:"updated_total_amount"`
}

// CalculatorGroupResponse represents one group of the calculator report.
type CalculatorGroupResponse struct {
	Token        string                   `json:"token"`
	PricePerUnit string                   `json:"price_per_unit"`
	TypeName     string                   `json:"type_name"`
	Sum          string                   `json:"sum"`
	Collapsed    bool                     `json:"collapsed"`
	Users        []CalculatorUserResponse `json:"users"`
}

// CalculatorReportResponse represents the calculator report.
type CalculatorReportResponse struct {
	Groups            []CalculatorGroupResponse `json:"groups"`
	TotalOfAll        string                    `json:"total_of_all"`
	UpdatedTotalOfAll string                    `json:"updated_total_of_all"`
	Profit            string                    `json:"profit"`
}

// GroupPriceOverrideRequest sets a replacement price for a whole group.
type GroupPriceOverrideRequest struct {
	GroupToken string `json:"group_token" binding:"required"`
	Price      string `json:"price" binding:"required"`
}

// UserOverrideRequest sets a per-user price and/or multiplier override.
type UserOverrideRequest struct {
	GroupToken string  `json:"group_token" binding:"required"`
	UserID     string  `json:"user_id" binding:"required,uuid"`
	Price      *string `json:"price,omitempty"`
	Multiplier *string `json:"multiplier,omitempty"`
}

// SetOverridesRequest represents the request body for storing overrides.
type SetOverridesRequest struct {
	GroupPrices   []GroupPriceOverrideRequest `json:"group_prices,omitempty"`
	UserOverrides []UserOverrideRequest       `json:"user_overrides,omitempty"`
}

// InvalidFieldResponse reports one override input that could not be parsed.
type InvalidFieldResponse struct {
	GroupToken string `json:"group_token"`
	UserID     string `json:"user_id,omitempty"`
	Field      string `json:"field"`
	Input      string `json:"input"`
}

// SetOverridesResponse represents the response for storing overrides.
type SetOverridesResponse struct {
	InvalidFields []InvalidFieldResponse `json:"invalid_fields"`
}

// RecalculateResponse represents the response after applying overrides.
type RecalculateResponse struct {
	Report        CalculatorReportResponse `json:"report"`
	InvalidFields []InvalidFieldResponse   `json:"invalid_fields"`
}

// ToggleGroupRequest represents the request body for a collapse toggle.
type ToggleGroupRequest struct {
	GroupToken string `json:"group_token" binding:"required"`
}

// ToggleGroupResponse represents the response for a collapse toggle.
type ToggleGroupResponse struct {
	GroupToken string `json:"group_token"`
	Collapsed  bool   `json:"collapsed"`
}

// ToCalculatorReportResponse converts an aggregation state to the wire format.
func ToCalculatorReportResponse(state *calculator.AggregationState) CalculatorReportResponse {
	groups := make([]CalculatorGroupResponse, 0, len(state.Groups))
	for _, group := range state.Groups {
		users := make([]CalculatorUserResponse, 0, len(group.Users))
		for _, user := range group.Users {
			row := CalculatorUserResponse{
				UserID:             user.UserID.String(),
				UserName:           user.UserName,
				GroupPricePerUnit:  user.GroupPricePerUnit.StringFixed(2),
				TotalAmount:        user.TotalAmount.StringFixed(2),
				UpdatedTotalAmount: user.UpdatedTotalAmount.StringFixed(2),
			}
			if user.UserWorkTypePricePerUnit != nil {
				figure := user.UserWorkTypePricePerUnit.StringFixed(2)
				row.UserWorkTypePricePerUnit = &figure
			}
			users = append(users, row)
		}
		groups = append(groups, CalculatorGroupResponse{
			Token:        group.Token,
			PricePerUnit: group.Key.PricePerUnit.StringFixed(2),
			TypeName:     group.Key.TypeName,
			Sum:          group.Sum.StringFixed(2),
			Collapsed:    state.Collapsed[group.Token],
			Users:        users,
		})
	}
	return CalculatorReportResponse{
		Groups:            groups,
		TotalOfAll:        state.TotalOfAll.StringFixed(2),
		UpdatedTotalOfAll: state.UpdatedTotalOfAll.StringFixed(2),
		Profit:            state.Profit.StringFixed(2),
	}
}

// ToInvalidFieldResponses converts engine invalid-field records to DTOs.
func ToInvalidFieldResponses(fields []calculator.InvalidField) []InvalidFieldResponse {
	responses := make([]InvalidFieldResponse, 0, len(fields))
	for _, f := range fields {
		resp := InvalidFieldResponse{
			GroupToken: f.GroupToken,
			Field:      string(f.Field),
			Input:      f.Input,
		}
		if f.UserID != nil {
			resp.UserID = f.UserID.String()
		}
		responses = append(responses, resp)
	}
	return responses
}

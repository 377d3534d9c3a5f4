// Package dto defines data transfer objects for API requests and responses.
package dto

// ChangeRoleRequest represents the request body for a role change.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin operator worker"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

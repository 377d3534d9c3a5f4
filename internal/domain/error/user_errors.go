// Package error defines domain-specific errors for the WorkTrack application.
package error

import "errors"

// User administration domain errors.
var (
	// ErrInvalidRole is returned when a role value is not one of the known roles.
	ErrInvalidRole = errors.New("invalid role")

	// ErrNotAuthorizedToChangeRole is returned when a non-admin attempts a role change.
	ErrNotAuthorizedToChangeRole = errors.New("not authorized to change roles")

	// ErrCannotDemoteLastAdmin is returned when a role change would leave no admin.
	ErrCannotDemoteLastAdmin = errors.New("cannot demote the last admin")
)

// UserErrorCode defines error codes for user administration errors.
// Format: USER-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	ErrCodeInvalidRole           UserErrorCode = "USER-010001"
	ErrCodeNotAuthorizedRole     UserErrorCode = "USER-010002"
	ErrCodeCannotDemoteLastAdmin UserErrorCode = "USER-010003"
)

// UserError represents a user administration error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

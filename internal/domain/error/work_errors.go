// Package error defines domain-specific errors for the WorkTrack application.
package error

import "errors"

// Work domain errors.
var (
	// ErrWorkNotFound is returned when a work record is not found in the system.
	ErrWorkNotFound = errors.New("work record not found")

	// ErrNotAuthorizedToModifyWork is returned when a user may not modify a work record.
	ErrNotAuthorizedToModifyWork = errors.New("not authorized to modify work record")

	// ErrInvalidWorkQuantity is returned when the work quantity is zero or negative.
	ErrInvalidWorkQuantity = errors.New("invalid work quantity")

	// ErrInvalidWorkDate is returned when the work date is missing.
	ErrInvalidWorkDate = errors.New("invalid work date")

	// ErrWorkTypeNotFoundForWork is returned when the referenced work type does not exist.
	ErrWorkTypeNotFoundForWork = errors.New("work type not found")

	// ErrTagNotFoundForWork is returned when a referenced tag does not exist.
	ErrTagNotFoundForWork = errors.New("tag not found")

	// ErrWorkNotesTooLong is returned when the notes exceed the maximum length.
	ErrWorkNotesTooLong = errors.New("notes too long")
)

// WorkErrorCode defines error codes for work errors.
// Format: WORK-XXYYYY where XX is category and YYYY is specific error.
type WorkErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWorkQuantity  WorkErrorCode = "WORK-010001"
	ErrCodeInvalidWorkDate      WorkErrorCode = "WORK-010002"
	ErrCodeWorkNotFound         WorkErrorCode = "WORK-010003"
	ErrCodeNotAuthorizedWork    WorkErrorCode = "WORK-010004"
	ErrCodeWorkTypeNotFound     WorkErrorCode = "WORK-010005"
	ErrCodeWorkTagNotFound      WorkErrorCode = "WORK-010006"
	ErrCodeWorkNotesTooLong     WorkErrorCode = "WORK-010007"
	ErrCodeMissingWorkFields    WorkErrorCode = "WORK-010008"
)

// WorkError represents a work error with code and message.
type WorkError struct {
	Code    WorkErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WorkError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WorkError) Unwrap() error {
	return e.Err
}

// NewWorkError creates a new WorkError with the given code and message.
func NewWorkError(code WorkErrorCode, message string, err error) *WorkError {
	return &WorkError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

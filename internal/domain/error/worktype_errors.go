// Package error defines domain-specific errors for the WorkTrack application.
package error

import "errors"

// Work type domain errors.
var (
	// ErrWorkTypeNotFound is returned when a work type is not found in the system.
	ErrWorkTypeNotFound = errors.New("work type not found")

	// ErrWorkTypeNameExists is returned when a work type with the same name exists.
	ErrWorkTypeNameExists = errors.New("work type name already exists")

	// ErrWorkTypeNameTooLong is returned when the name exceeds the maximum length.
	ErrWorkTypeNameTooLong = errors.New("work type name too long")

	// ErrWorkTypeNameReservedChar is returned when the name contains the group key delimiter.
	ErrWorkTypeNameReservedChar = errors.New("work type name contains a reserved character")

	// ErrInvalidPricePerUnit is returned when the price per unit is zero or negative.
	ErrInvalidPricePerUnit = errors.New("price per unit must be positive")

	// ErrWorkTypeInUse is returned when deleting a work type that work records reference.
	ErrWorkTypeInUse = errors.New("work type is referenced by work records")

	// ErrRateNotFound is returned when a personal rate entry does not exist.
	ErrRateNotFound = errors.New("personal rate not found")
)

// WorkTypeErrorCode defines error codes for work type errors.
// Format: WT-XXYYYY where XX is category and YYYY is specific error.
type WorkTypeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWorkTypeNotFoundWT     WorkTypeErrorCode = "WT-010001"
	ErrCodeWorkTypeNameExists     WorkTypeErrorCode = "WT-010002"
	ErrCodeWorkTypeNameTooLong    WorkTypeErrorCode = "WT-010003"
	ErrCodeWorkTypeNameReserved   WorkTypeErrorCode = "WT-010004"
	ErrCodeInvalidPricePerUnit    WorkTypeErrorCode = "WT-010005"
	ErrCodeWorkTypeInUse          WorkTypeErrorCode = "WT-010006"
	ErrCodeRateNotFound           WorkTypeErrorCode = "WT-010007"
)

// WorkTypeError represents a work type error with code and message.
type WorkTypeError struct {
	Code    WorkTypeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WorkTypeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WorkTypeError) Unwrap() error {
	return e.Err
}

// NewWorkTypeError creates a new WorkTypeError with the given code and message.
func NewWorkTypeError(code WorkTypeErrorCode, message string, err error) *WorkTypeError {
	return &WorkTypeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the WorkTrack application.
package error

import "errors"

// Calculator domain errors.
var (
	// ErrMalformedGroupKey is returned when a report group key cannot be decoded.
	ErrMalformedGroupKey = errors.New("malformed group key")

	// ErrDuplicateGroupKey is returned when the raw report contains the same group key twice.
	ErrDuplicateGroupKey = errors.New("duplicate group key in report")

	// ErrZeroBaselinePrice is returned when a group's baseline price per unit is zero.
	ErrZeroBaselinePrice = errors.New("group baseline price per unit is zero")

	// ErrInvalidDateRange is returned when the report date range is missing or inverted.
	ErrInvalidDateRange = errors.New("invalid report date range")

	// ErrNoReportSession is returned when overrides or recalculation are requested
	// before a report has been fetched.
	ErrNoReportSession = errors.New("no calculator report loaded")

	// ErrUnknownGroup is returned when an override or toggle references a group
	// that is not part of the loaded report.
	ErrUnknownGroup = errors.New("group not present in report")

	// ErrStaleFilter signals that a report fetch finished after a newer filter was
	// applied. It is handled internally and never surfaced to the client.
	ErrStaleFilter = errors.New("report fetch superseded by newer filter")
)

// CalculatorErrorCode defines error codes for calculator errors.
// Format: CALC-XXYYYY where XX is category and YYYY is specific error.
type CalculatorErrorCode string

const (
	// Data integrity errors (01XXXX)
	ErrCodeMalformedGroupKey CalculatorErrorCode = "CALC-010001"
	ErrCodeDuplicateGroupKey CalculatorErrorCode = "CALC-010002"
	ErrCodeZeroBaselinePrice CalculatorErrorCode = "CALC-010003"

	// Request errors (02XXXX)
	ErrCodeInvalidCalcDateRange CalculatorErrorCode = "CALC-020001"
	ErrCodeNoReportSession      CalculatorErrorCode = "CALC-020002"
	ErrCodeUnknownGroup         CalculatorErrorCode = "CALC-020003"

	// Internal coordination (03XXXX)
	ErrCodeStaleFilter CalculatorErrorCode = "CALC-030001"
)

// CalculatorError represents a calculator error with code and message.
type CalculatorError struct {
	Code    CalculatorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalculatorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalculatorError) Unwrap() error {
	return e.Err
}

// NewCalculatorError creates a new CalculatorError with the given code and message.
func NewCalculatorError(code CalculatorErrorCode, message string, err error) *CalculatorError {
	return &CalculatorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the WorkTrack application.
package error

import "errors"

// Expense/sale ledger domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidLedgerAmount is returned when an expense or sale amount is not positive.
	ErrInvalidLedgerAmount = errors.New("amount must be positive")

	// ErrInvalidLedgerDate is returned when an expense or sale date is missing.
	ErrInvalidLedgerDate = errors.New("invalid date")

	// ErrLedgerDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrLedgerDescriptionTooLong = errors.New("description too long")
)

// LedgerErrorCode defines error codes for expense/sale errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	ErrCodeExpenseNotFound          LedgerErrorCode = "LDG-010001"
	ErrCodeSaleNotFound             LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidLedgerAmount      LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidLedgerDate        LedgerErrorCode = "LDG-010004"
	ErrCodeLedgerDescriptionTooLong LedgerErrorCode = "LDG-010005"
)

// LedgerError represents an expense/sale error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

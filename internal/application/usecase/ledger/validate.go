// Package ledger contains expense and sale use cases. Expenses and sales are
// the two sides of the profit figure the calculator report carries.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 255

	// ledgerDateLayout is the wire format for expense and sale dates.
	ledgerDateLayout = "2006-01-02"
)

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerAmount,
			"amount must be positive",
			domainerror.ErrInvalidLedgerAmount,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrLedgerDescriptionTooLong,
		)
	}
	return nil
}

func parseLedgerDate(value string) (time.Time, error) {
	date, err := time.Parse(ledgerDateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidLedgerDate,
		)
	}
	return date, nil
}

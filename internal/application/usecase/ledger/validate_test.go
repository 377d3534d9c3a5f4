package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

func ledgerErrorCode(t *testing.T, err error) domainerror.LedgerErrorCode {
	t.Helper()
	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) {
		t.Fatalf("expected a ledger error, got %v", err)
	}
	return ledgerErr.Code
}

func TestValidateAmount(t *testing.T) {
	if err := validateAmount(decimal.RequireFromString("0.01")); err != nil {
		t.Errorf("expected a positive amount to pass, got %v", err)
	}

	for _, amount := range []string{"0", "-5"} {
		err := validateAmount(decimal.RequireFromString(amount))
		if code := ledgerErrorCode(t, err); code != domainerror.ErrCodeInvalidLedgerAmount {
			t.Errorf("amount %s: expected InvalidLedgerAmount, got %s", amount, code)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	if err := validateDescription(strings.Repeat("x", MaxDescriptionLength)); err != nil {
		t.Errorf("expected a max-length description to pass, got %v", err)
	}

	err := validateDescription(strings.Repeat("x", MaxDescriptionLength+1))
	if code := ledgerErrorCode(t, err); code != domainerror.ErrCodeLedgerDescriptionTooLong {
		t.Errorf("expected LedgerDescriptionTooLong, got %s", code)
	}
}

func TestParseLedgerDate(t *testing.T) {
	date, err := parseLedgerDate("2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2026 || date.Month() != 3 || date.Day() != 5 {
		t.Errorf("unexpected date: %v", date)
	}

	for _, input := range []string{"", "05/03/2026", "2026-13-01"} {
		_, err := parseLedgerDate(input)
		if code := ledgerErrorCode(t, err); code != domainerror.ErrCodeInvalidLedgerDate {
			t.Errorf("input %q: expected InvalidLedgerDate, got %s", input, code)
		}
	}
}

package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

func TestGroupKeyToken(t *testing.T) {
	t.Run("encodes price and type name with the delimiter", func(t *testing.T) {
		key := NewGroupKey(decimal.RequireFromString("10"), "Digging")
		if got := key.Token(); got != "10|Digging" {
			t.Errorf("expected token %q, got %q", "10|Digging", got)
		}
	})

	t.Run("keeps decimal places of the price", func(t *testing.T) {
		key := NewGroupKey(decimal.RequireFromString("12.50"), "Paving")
		if got := key.Token(); got != "12.5|Paving" {
			t.Errorf("expected token %q, got %q", "12.5|Paving", got)
		}
	})
}

func TestParseGroupKey(t *testing.T) {
	t.Run("round-trips a token", func(t *testing.T) {
		original := NewGroupKey(decimal.RequireFromString("10.25"), "Digging")
		parsed, err := ParseGroupKey(original.Token())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !parsed.PricePerUnit.Equal(original.PricePerUnit) {
			t.Errorf("expected price %s, got %s", original.PricePerUnit, parsed.PricePerUnit)
		}
		if parsed.TypeName != original.TypeName {
			t.Errorf("expected type name %q, got %q", original.TypeName, parsed.TypeName)
		}
	})

	t.Run("splits on the first delimiter only", func(t *testing.T) {
		parsed, err := ParseGroupKey("10|Digging|Deep")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.TypeName != "Digging|Deep" {
			t.Errorf("expected type name %q, got %q", "Digging|Deep", parsed.TypeName)
		}
	})

	t.Run("fails when the delimiter is absent", func(t *testing.T) {
		_, err := ParseGroupKey("10Digging")
		if !errors.Is(err, domainerror.ErrMalformedGroupKey) {
			t.Errorf("expected ErrMalformedGroupKey, got %v", err)
		}

		var calcErr *domainerror.CalculatorError
		if !errors.As(err, &calcErr) {
			t.Fatal("expected a CalculatorError")
		}
		if calcErr.Code != domainerror.ErrCodeMalformedGroupKey {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMalformedGroupKey, calcErr.Code)
		}
	})

	t.Run("fails when the price part is not numeric", func(t *testing.T) {
		_, err := ParseGroupKey("ten|Digging")
		if !errors.Is(err, domainerror.ErrMalformedGroupKey) {
			t.Errorf("expected ErrMalformedGroupKey, got %v", err)
		}
	})
}

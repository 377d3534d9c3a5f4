package calculator

import (
	"testing"

	"github.com/google/uuid"
)

func TestOverrides(t *testing.T) {
	t.Run("absent entries mean no override, never zero", func(t *testing.T) {
		overrides := NewOverrides()
		userID := uuid.New()

		if _, ok := overrides.GroupPrice("10|Digging"); ok {
			t.Error("expected no group price override")
		}
		if _, ok := overrides.UserPrice("10|Digging", userID); ok {
			t.Error("expected no user price override")
		}
		if _, ok := overrides.UserMultiplier("10|Digging", userID); ok {
			t.Error("expected no user multiplier override")
		}
		if !overrides.IsEmpty() {
			t.Error("expected fresh store to be empty")
		}
	})

	t.Run("setting the same value twice is idempotent", func(t *testing.T) {
		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("12"))
		overrides.SetGroupPrice("10|Digging", dec("12"))

		price, ok := overrides.GroupPrice("10|Digging")
		if !ok || !price.Equal(dec("12")) {
			t.Errorf("expected single override of 12, got %s (ok=%v)", price, ok)
		}
	})

	t.Run("price and multiplier for the same user coexist", func(t *testing.T) {
		overrides := NewOverrides()
		userID := uuid.New()

		overrides.SetUserPrice("10|Digging", userID, dec("15"))
		overrides.SetUserMultiplier("10|Digging", userID, dec("30"))

		if price, ok := overrides.UserPrice("10|Digging", userID); !ok || !price.Equal(dec("15")) {
			t.Errorf("expected user price 15, got %s (ok=%v)", price, ok)
		}
		if figure, ok := overrides.UserMultiplier("10|Digging", userID); !ok || !figure.Equal(dec("30")) {
			t.Errorf("expected multiplier figure 30, got %s (ok=%v)", figure, ok)
		}
	})

	t.Run("same user in different groups is kept apart", func(t *testing.T) {
		overrides := NewOverrides()
		userID := uuid.New()

		overrides.SetUserPrice("10|Digging", userID, dec("15"))

		if _, ok := overrides.UserPrice("7|Paving", userID); ok {
			t.Error("override must be scoped to its group")
		}
	})

	t.Run("parses operator text input", func(t *testing.T) {
		overrides := NewOverrides()
		overrides.SetGroupPriceInput("10|Digging", " 12.50 ")

		price, ok := overrides.GroupPrice("10|Digging")
		if !ok || !price.Equal(dec("12.5")) {
			t.Errorf("expected 12.5, got %s (ok=%v)", price, ok)
		}
		if len(overrides.InvalidFields()) != 0 {
			t.Errorf("expected no flagged fields, got %v", overrides.InvalidFields())
		}
	})

	t.Run("flags unparseable input and keeps the baseline", func(t *testing.T) {
		overrides := NewOverrides()
		userID := uuid.New()

		overrides.SetGroupPriceInput("10|Digging", "abc")
		overrides.SetUserMultiplierInput("10|Digging", userID, "1,5")

		if !overrides.IsEmpty() {
			t.Error("invalid input must not create overrides")
		}

		flagged := overrides.InvalidFields()
		if len(flagged) != 2 {
			t.Fatalf("expected 2 flagged fields, got %d", len(flagged))
		}
		if flagged[0].Field != FieldGroupPrice || flagged[0].Input != "abc" {
			t.Errorf("unexpected first flag: %+v", flagged[0])
		}
		if flagged[1].Field != FieldUserMultiplier || flagged[1].UserID == nil || *flagged[1].UserID != userID {
			t.Errorf("unexpected second flag: %+v", flagged[1])
		}
	})

	t.Run("clear removes overrides and flags", func(t *testing.T) {
		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("12"))
		overrides.SetGroupPriceInput("10|Digging", "oops")

		overrides.Clear()

		if !overrides.IsEmpty() {
			t.Error("expected empty store after Clear")
		}
		if len(overrides.InvalidFields()) != 0 {
			t.Error("expected no flagged fields after Clear")
		}
	})
}

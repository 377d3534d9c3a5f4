package calculator

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

var testDivisor = decimal.NewFromInt(DefaultMultiplierDivisor)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func record(name, amount string, personalFigure *decimal.Decimal) UserWorkRecord {
	return UserWorkRecord{
		UserID:                   uuid.New(),
		UserName:                 name,
		TotalAmount:              dec(amount),
		UserWorkTypePricePerUnit: personalFigure,
	}
}

func TestBuildAggregation(t *testing.T) {
	t.Run("sums a single group without personal multipliers", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{
					record("alice", "100", nil),
					record("bob", "50", nil),
				}},
			},
			TotalOfAll: dec("150"),
			Profit:     dec("500"),
		}

		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !state.GroupSums["10|Digging"].Equal(dec("150")) {
			t.Errorf("expected group sum 150, got %s", state.GroupSums["10|Digging"])
		}
		if !state.TotalOfAll.Equal(dec("150")) {
			t.Errorf("expected totalOfAll 150, got %s", state.TotalOfAll)
		}
		if !state.UpdatedTotalOfAll.Equal(state.TotalOfAll) {
			t.Errorf("expected updated total to start at baseline, got %s", state.UpdatedTotalOfAll)
		}
		if !state.Profit.Equal(dec("500")) {
			t.Errorf("expected profit 500, got %s", state.Profit)
		}
	})

	t.Run("applies the personal multiplier figure divided by the divisor", func(t *testing.T) {
		// Figure 20 with divisor 10 means x2.0.
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{
					record("alice", "50", decPtr("20")),
				}},
			},
			TotalOfAll: dec("50"),
			Profit:     dec("0"),
		}

		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := state.Groups[0].Users[0].UpdatedTotalAmount
		if !got.Equal(dec("100")) {
			t.Errorf("expected updated amount 100, got %s", got)
		}
		if !state.TotalOfAll.Equal(dec("100")) {
			t.Errorf("expected totalOfAll 100, got %s", state.TotalOfAll)
		}
	})

	t.Run("adjusts profit by the delta between server and computed totals", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{
					record("alice", "50", decPtr("20")),
				}},
			},
			TotalOfAll: dec("50"),
			Profit:     dec("200"),
		}

		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// profit = 200 + 50 - 100
		if !state.Profit.Equal(dec("150")) {
			t.Errorf("expected profit 150, got %s", state.Profit)
		}
		// Conservation: profit + updatedTotalOfAll == serverProfit + serverTotal.
		if !state.Profit.Add(state.UpdatedTotalOfAll).Equal(dec("250")) {
			t.Errorf("conservation violated: %s", state.Profit.Add(state.UpdatedTotalOfAll))
		}
	})

	t.Run("sorts groups descending by sum with stable ties", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "5|Sweeping", Users: []UserWorkRecord{record("a", "30", nil)}},
				{Key: "10|Digging", Users: []UserWorkRecord{record("b", "90", nil)}},
				{Key: "7|Paving", Users: []UserWorkRecord{record("c", "30", nil)}},
			},
			TotalOfAll: dec("150"),
			Profit:     dec("0"),
		}

		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gotOrder := []string{state.Groups[0].Token, state.Groups[1].Token, state.Groups[2].Token}
		wantOrder := []string{"10|Digging", "5|Sweeping", "7|Paving"}
		for i := range wantOrder {
			if gotOrder[i] != wantOrder[i] {
				t.Fatalf("expected order %v, got %v", wantOrder, gotOrder)
			}
		}
	})

	t.Run("starts every group collapsed", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{record("a", "10", nil)}},
				{Key: "7|Paving", Users: []UserWorkRecord{record("b", "10", nil)}},
			},
		}

		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for token, collapsed := range state.Collapsed {
			if !collapsed {
				t.Errorf("expected group %s to start collapsed", token)
			}
		}
	})

	t.Run("rounds the grand total to two decimals half-up", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				// 33.333... x 1.5 = 50.0000; use values producing a half-cent.
				{Key: "10|Digging", Users: []UserWorkRecord{
					record("a", "10.01", decPtr("15")), // 15.015 -> 15.02
				}},
			},
			TotalOfAll: dec("10.01"),
			Profit:     dec("0"),
		}

		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !state.Groups[0].Users[0].UpdatedTotalAmount.Equal(dec("15.02")) {
			t.Errorf("expected 15.02, got %s", state.Groups[0].Users[0].UpdatedTotalAmount)
		}
	})

	t.Run("rejects a malformed group key", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{{Key: "10Digging", Users: []UserWorkRecord{record("a", "10", nil)}}},
		}

		_, err := BuildAggregation(raw, testDivisor)
		if !errors.Is(err, domainerror.ErrMalformedGroupKey) {
			t.Errorf("expected ErrMalformedGroupKey, got %v", err)
		}
	})

	t.Run("rejects a zero baseline price", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{{Key: "0|Digging", Users: []UserWorkRecord{record("a", "10", nil)}}},
		}

		_, err := BuildAggregation(raw, testDivisor)
		if !errors.Is(err, domainerror.ErrZeroBaselinePrice) {
			t.Errorf("expected ErrZeroBaselinePrice, got %v", err)
		}
	})

	t.Run("rejects duplicate group keys", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{record("a", "10", nil)}},
				{Key: "10|Digging", Users: []UserWorkRecord{record("b", "20", nil)}},
			},
		}

		_, err := BuildAggregation(raw, testDivisor)
		if !errors.Is(err, domainerror.ErrDuplicateGroupKey) {
			t.Errorf("expected ErrDuplicateGroupKey, got %v", err)
		}
	})
}

func TestToggleGroup(t *testing.T) {
	raw := RawReport{
		Groups: []RawGroup{{Key: "10|Digging", Users: []UserWorkRecord{record("a", "10", nil)}}},
	}
	state, err := BuildAggregation(raw, testDivisor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("flips the collapse flag and nothing else", func(t *testing.T) {
		next, err := ToggleGroup(state, "10|Digging")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Collapsed["10|Digging"] {
			t.Error("expected group to be expanded after toggle")
		}
		if !next.TotalOfAll.Equal(state.TotalOfAll) || !next.Profit.Equal(state.Profit) {
			t.Error("toggle must not touch totals")
		}
		// Original state untouched.
		if !state.Collapsed["10|Digging"] {
			t.Error("toggle must not mutate the input state")
		}
	})

	t.Run("toggling twice restores the flag", func(t *testing.T) {
		once, _ := ToggleGroup(state, "10|Digging")
		twice, _ := ToggleGroup(once, "10|Digging")
		if !twice.Collapsed["10|Digging"] {
			t.Error("expected group collapsed again after double toggle")
		}
	})

	t.Run("rejects an unknown group", func(t *testing.T) {
		_, err := ToggleGroup(state, "99|Nothing")
		if !errors.Is(err, domainerror.ErrUnknownGroup) {
			t.Errorf("expected ErrUnknownGroup, got %v", err)
		}
	})
}

package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func buildTwoUserState(t *testing.T) *AggregationState {
	t.Helper()

	raw := RawReport{
		Groups: []RawGroup{{Key: "10|Digging", Users: []UserWorkRecord{
			record("alice", "100", nil),
			record("bob", "50", nil),
		}}},
		TotalOfAll: dec("150"),
		Profit:     dec("500"),
	}

	state, err := BuildAggregation(raw, testDivisor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return state
}

func TestRecalculate(t *testing.T) {
	t.Run("group price override scales every user's amount", func(t *testing.T) {
		state := buildTwoUserState(t)

		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("12"))

		next := Recalculate(state, overrides, testDivisor)

		// Each amount scales by 12/10.
		if !next.Groups[0].Users[0].UpdatedTotalAmount.Equal(dec("120")) {
			t.Errorf("expected 120, got %s", next.Groups[0].Users[0].UpdatedTotalAmount)
		}
		if !next.Groups[0].Users[1].UpdatedTotalAmount.Equal(dec("60")) {
			t.Errorf("expected 60, got %s", next.Groups[0].Users[1].UpdatedTotalAmount)
		}
		if !next.GroupSums["10|Digging"].Equal(dec("180")) {
			t.Errorf("expected group sum 180, got %s", next.GroupSums["10|Digging"])
		}
		if !next.UpdatedTotalOfAll.Equal(dec("180")) {
			t.Errorf("expected updated total 180, got %s", next.UpdatedTotalOfAll)
		}
		// Profit decreases by exactly the 30 the total gained.
		if !state.Profit.Sub(next.Profit).Equal(dec("30")) {
			t.Errorf("expected profit to drop by 30, dropped by %s", state.Profit.Sub(next.Profit))
		}
	})

	t.Run("multiplier override replaces the personal figure", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{record("alice", "50", decPtr("20"))}},
			},
			TotalOfAll: dec("50"),
			Profit:     dec("0"),
		}
		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.Groups[0].Users[0].UpdatedTotalAmount.Equal(dec("100")) {
			t.Fatalf("expected initial amount 100, got %s", state.Groups[0].Users[0].UpdatedTotalAmount)
		}

		overrides := NewOverrides()
		overrides.SetUserMultiplier("10|Digging", state.Groups[0].Users[0].UserID, dec("30"))

		next := Recalculate(state, overrides, testDivisor)
		if !next.Groups[0].Users[0].UpdatedTotalAmount.Equal(dec("150")) {
			t.Errorf("expected 150 with figure 30, got %s", next.Groups[0].Users[0].UpdatedTotalAmount)
		}
	})

	t.Run("user price override supersedes the group price", func(t *testing.T) {
		state := buildTwoUserState(t)
		aliceID := state.Groups[0].Users[0].UserID

		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("20"))
		overrides.SetUserPrice("10|Digging", aliceID, dec("15"))

		next := Recalculate(state, overrides, testDivisor)

		// alice: 100/10*15 = 150; bob: 50/10*20 = 100.
		if !next.Groups[0].Users[0].UpdatedTotalAmount.Equal(dec("150")) {
			t.Errorf("expected 150, got %s", next.Groups[0].Users[0].UpdatedTotalAmount)
		}
		if !next.Groups[0].Users[1].UpdatedTotalAmount.Equal(dec("100")) {
			t.Errorf("expected 100, got %s", next.Groups[0].Users[1].UpdatedTotalAmount)
		}
	})

	t.Run("is idempotent with unchanged overrides", func(t *testing.T) {
		state := buildTwoUserState(t)

		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("12"))

		once := Recalculate(state, overrides, testDivisor)
		twice := Recalculate(once, overrides, testDivisor)

		if !once.UpdatedTotalOfAll.Equal(twice.UpdatedTotalOfAll) {
			t.Errorf("totals diverged: %s vs %s", once.UpdatedTotalOfAll, twice.UpdatedTotalOfAll)
		}
		if !once.Profit.Equal(twice.Profit) {
			t.Errorf("profit diverged: %s vs %s", once.Profit, twice.Profit)
		}
	})

	t.Run("clearing overrides reproduces the builder output", func(t *testing.T) {
		state := buildTwoUserState(t)

		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("12"))
		edited := Recalculate(state, overrides, testDivisor)

		overrides.Clear()
		restored := Recalculate(edited, overrides, testDivisor)

		if !restored.UpdatedTotalOfAll.Equal(state.TotalOfAll) {
			t.Errorf("expected total restored to %s, got %s", state.TotalOfAll, restored.UpdatedTotalOfAll)
		}
		if !restored.Profit.Equal(state.Profit) {
			t.Errorf("expected profit restored to %s, got %s", state.Profit, restored.Profit)
		}
		for i, user := range restored.Groups[0].Users {
			want := state.Groups[0].Users[i].UpdatedTotalAmount
			if !user.UpdatedTotalAmount.Equal(want) {
				t.Errorf("user %s: expected %s, got %s", user.UserName, want, user.UpdatedTotalAmount)
			}
		}
	})

	t.Run("preserves the conservation invariant across any edit sequence", func(t *testing.T) {
		state := buildTwoUserState(t)
		baseline := state.Profit.Add(state.UpdatedTotalOfAll)
		aliceID := state.Groups[0].Users[0].UserID

		overrides := NewOverrides()
		steps := []func(){
			func() { overrides.SetGroupPrice("10|Digging", dec("12")) },
			func() { overrides.SetUserPrice("10|Digging", aliceID, dec("7.5")) },
			func() { overrides.SetUserMultiplier("10|Digging", aliceID, dec("25")) },
			func() { overrides.Clear() },
		}

		for i, step := range steps {
			step()
			state = Recalculate(state, overrides, testDivisor)
			got := state.Profit.Add(state.UpdatedTotalOfAll)
			if !got.Equal(baseline) {
				t.Fatalf("step %d: expected profit+total %s, got %s", i, baseline, got)
			}
		}
	})

	t.Run("group sums always add up to the updated grand total", func(t *testing.T) {
		raw := RawReport{
			Groups: []RawGroup{
				{Key: "10|Digging", Users: []UserWorkRecord{record("a", "33.33", nil), record("b", "66.67", nil)}},
				{Key: "7.5|Paving", Users: []UserWorkRecord{record("c", "11.11", decPtr("15"))}},
			},
			TotalOfAll: dec("111.11"),
			Profit:     dec("42"),
		}
		state, err := BuildAggregation(raw, testDivisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		overrides := NewOverrides()
		overrides.SetGroupPrice("7.5|Paving", dec("9"))
		state = Recalculate(state, overrides, testDivisor)

		sum := decimal.Zero
		for _, groupSum := range state.GroupSums {
			sum = sum.Add(groupSum)
		}
		if sum.Sub(state.UpdatedTotalOfAll).Abs().GreaterThan(dec("0.01")) {
			t.Errorf("group sums %s drift from total %s", sum, state.UpdatedTotalOfAll)
		}
	})

	t.Run("leaves the input state untouched", func(t *testing.T) {
		state := buildTwoUserState(t)
		before := state.Clone()

		overrides := NewOverrides()
		overrides.SetGroupPrice("10|Digging", dec("12"))
		_ = Recalculate(state, overrides, testDivisor)

		if !state.UpdatedTotalOfAll.Equal(before.UpdatedTotalOfAll) || !state.Profit.Equal(before.Profit) {
			t.Error("Recalculate must not mutate its input")
		}
		if !state.Groups[0].Users[0].UpdatedTotalAmount.Equal(before.Groups[0].Users[0].UpdatedTotalAmount) {
			t.Error("Recalculate must not mutate user rows of its input")
		}
	})
}

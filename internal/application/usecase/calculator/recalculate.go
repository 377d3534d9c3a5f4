package calculator

import (
	"github.com/shopspring/decimal"
)

// Recalculate re-derives every user's adjusted amount, every group sum, the
// grand total and the profit from the current overrides. It is a pure
// transform over the state: every value is recomputed from the baseline rather
// than incremented, so applying it twice with unchanged overrides yields
// identical totals, and clearing all overrides reproduces the original build.
//
// For each user:
//
//	effectivePrice      = userPriceOverride ?? groupPriceOverride ?? baselinePrice
//	effectiveMultiplier = (userMultiplierOverride ?? personal figure) / divisor, else 1
//	newAmount           = round(totalAmount / baselinePrice * effectivePrice * effectiveMultiplier, 2)
//
// Profit moves inversely to the total so that profit + updatedTotalOfAll stays
// pinned to the server-reported baseline.
func Recalculate(state *AggregationState, overrides *Overrides, multiplierDivisor decimal.Decimal) *AggregationState {
	next := state.Clone()

	newTotal := decimal.Zero
	for gi := range next.Groups {
		group := &next.Groups[gi]
		baselinePrice := group.Key.PricePerUnit

		groupPrice := baselinePrice
		if price, ok := overrides.GroupPrice(group.Token); ok {
			groupPrice = price
		}

		groupSum := decimal.Zero
		for ui := range group.Users {
			user := &group.Users[ui]

			effectivePrice := groupPrice
			if price, ok := overrides.UserPrice(group.Token, user.UserID); ok {
				effectivePrice = price
			}

			effectiveMultiplier := decimal.NewFromInt(1)
			if figure, ok := overrides.UserMultiplier(group.Token, user.UserID); ok {
				effectiveMultiplier = figure.Div(multiplierDivisor)
			} else if user.UserWorkTypePricePerUnit != nil {
				effectiveMultiplier = user.UserWorkTypePricePerUnit.Div(multiplierDivisor)
			}

			// baselinePrice is non-zero by construction: BuildAggregation
			// rejects zero-price groups.
			newAmount := user.TotalAmount.
				Div(baselinePrice).
				Mul(effectivePrice).
				Mul(effectiveMultiplier)
			user.UpdatedTotalAmount = newAmount.Round(2)
			groupSum = groupSum.Add(user.UpdatedTotalAmount)
		}

		group.Sum = groupSum
		next.GroupSums[group.Token] = groupSum
		newTotal = newTotal.Add(groupSum)
	}

	next.Profit = next.Profit.Sub(newTotal).Add(next.UpdatedTotalOfAll).Round(2)
	next.UpdatedTotalOfAll = newTotal.Round(2)

	return next
}

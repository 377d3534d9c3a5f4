package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/domain/valueobject"
)

// BuildAggregation turns the raw pre-grouped report payload into an
// AggregationState: per-user amounts with personal multipliers applied, group
// sums, groups sorted descending by sum (stable, ties keep server order), the
// 2-dp rounded grand total and the profit baseline. Every group starts
// collapsed. The multiplier divisor converts operator-unit multiplier figures
// into true ratios.
//
// Malformed group keys, duplicate keys and zero baseline prices are data
// integrity errors: the whole build fails, nothing is skipped silently.
func BuildAggregation(raw RawReport, multiplierDivisor decimal.Decimal) (*AggregationState, error) {
	groups := make([]Group, 0, len(raw.Groups))
	sums := make(map[string]decimal.Decimal, len(raw.Groups))
	collapsed := make(map[string]bool, len(raw.Groups))

	for _, rawGroup := range raw.Groups {
		key, err := valueobject.ParseGroupKey(rawGroup.Key)
		if err != nil {
			return nil, err
		}
		if key.PricePerUnit.IsZero() {
			return nil, domainerror.NewCalculatorError(
				domainerror.ErrCodeZeroBaselinePrice,
				"group "+rawGroup.Key+" has a zero baseline price per unit",
				domainerror.ErrZeroBaselinePrice,
			)
		}

		token := key.Token()
		if _, exists := sums[token]; exists {
			return nil, domainerror.NewCalculatorError(
				domainerror.ErrCodeDuplicateGroupKey,
				"group key "+token+" appears more than once",
				domainerror.ErrDuplicateGroupKey,
			)
		}

		users := make([]UserWorkRecord, len(rawGroup.Users))
		groupSum := decimal.Zero
		for i, user := range rawGroup.Users {
			multiplier := decimal.NewFromInt(1)
			if user.UserWorkTypePricePerUnit != nil {
				multiplier = user.UserWorkTypePricePerUnit.Div(multiplierDivisor)
			}

			user.GroupPricePerUnit = key.PricePerUnit
			user.UpdatedTotalAmount = user.TotalAmount.Mul(multiplier).Round(2)
			users[i] = user
			groupSum = groupSum.Add(user.UpdatedTotalAmount)
		}

		groups = append(groups, Group{
			Token: token,
			Key:   key,
			Users: users,
			Sum:   groupSum,
		})
		sums[token] = groupSum
		collapsed[token] = true
	}

	// Descending by sum; SliceStable keeps server order for equal sums.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Sum.GreaterThan(groups[j].Sum)
	})

	totalOfAll := decimal.Zero
	for _, g := range groups {
		totalOfAll = totalOfAll.Add(g.Sum)
	}
	totalOfAll = totalOfAll.Round(2)

	profit := raw.Profit.Add(raw.TotalOfAll).Sub(totalOfAll).Round(2)

	return &AggregationState{
		Groups:            groups,
		GroupSums:         sums,
		TotalOfAll:        totalOfAll,
		UpdatedTotalOfAll: totalOfAll,
		Profit:            profit,
		Collapsed:         collapsed,
	}, nil
}

// ToggleGroup flips a group's collapse flag and returns the updated state.
// It has no other effect on the state.
func ToggleGroup(state *AggregationState, groupToken string) (*AggregationState, error) {
	if _, ok := state.group(groupToken); !ok {
		return nil, domainerror.NewCalculatorError(
			domainerror.ErrCodeUnknownGroup,
			"cannot toggle unknown group "+groupToken,
			domainerror.ErrUnknownGroup,
		)
	}

	next := state.Clone()
	next.Collapsed[groupToken] = !next.Collapsed[groupToken]
	return next, nil
}

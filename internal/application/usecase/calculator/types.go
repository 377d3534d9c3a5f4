// Package calculator contains the grouped financial aggregation and
// recalculation engine behind the calculator report, plus its use cases.
package calculator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worktrack/backend/internal/domain/valueobject"
)

// DefaultMultiplierDivisor converts an operator-entered multiplier figure into a
// true ratio: operators type "20" to mean x2.0. The division by 10 is a
// long-standing input convention of the mobile app, not derived from anything.
const DefaultMultiplierDivisor = 10

// UserWorkRecord is one aggregated row for a user within a report group.
type UserWorkRecord struct {
	UserID            uuid.UUID
	UserName          string
	GroupPricePerUnit decimal.Decimal
	// TotalAmount is the server-computed baseline amount. It is never mutated;
	// UpdatedTotalAmount is always re-derived from it.
	TotalAmount decimal.Decimal
	// UserWorkTypePricePerUnit, when present, is the user's personal multiplier
	// figure in operator units (divide by the multiplier divisor for the ratio).
	UserWorkTypePricePerUnit *decimal.Decimal
	UpdatedTotalAmount       decimal.Decimal
}

// RawGroup is one pre-grouped slice of the raw report payload. Groups and the
// users within them keep server response order; that order is part of the
// contract (sort tie-breaking and display order), which is why the payload is
// an ordered slice rather than a map.
type RawGroup struct {
	Key   string
	Users []UserWorkRecord
}

// RawReport is the raw payload the report repository produces for a filter.
type RawReport struct {
	Groups     []RawGroup
	TotalOfAll decimal.Decimal
	Profit     decimal.Decimal
}

// Group is a decoded, aggregated report group.
type Group struct {
	Token string
	Key   valueobject.GroupKey
	Users []UserWorkRecord
	Sum   decimal.Decimal
}

// AggregationState is the full, explicit state of a calculator report: grouped
// rows, totals, profit and per-group collapse flags. Engine operations treat it
// as immutable and return transformed copies.
type AggregationState struct {
	// Groups are ordered descending by Sum; ties keep server order.
	Groups    []Group
	GroupSums map[string]decimal.Decimal
	// TotalOfAll is the baseline total, computed once per fetch and never mutated.
	TotalOfAll        decimal.Decimal
	UpdatedTotalOfAll decimal.Decimal
	Profit            decimal.Decimal
	Collapsed         map[string]bool
}

// Clone returns a deep copy of the state.
func (s *AggregationState) Clone() *AggregationState {
	groups := make([]Group, len(s.Groups))
	for i, g := range s.Groups {
		users := make([]UserWorkRecord, len(g.Users))
		copy(users, g.Users)
		groups[i] = Group{Token: g.Token, Key: g.Key, Users: users, Sum: g.Sum}
	}

	sums := make(map[string]decimal.Decimal, len(s.GroupSums))
	for token, sum := range s.GroupSums {
		sums[token] = sum
	}

	collapsed := make(map[string]bool, len(s.Collapsed))
	for token, c := range s.Collapsed {
		collapsed[token] = c
	}

	return &AggregationState{
		Groups:            groups,
		GroupSums:         sums,
		TotalOfAll:        s.TotalOfAll,
		UpdatedTotalOfAll: s.UpdatedTotalOfAll,
		Profit:            s.Profit,
		Collapsed:         collapsed,
	}
}

// group returns the group with the given token, if present.
func (s *AggregationState) group(token string) (*Group, bool) {
	for i := range s.Groups {
		if s.Groups[i].Token == token {
			return &s.Groups[i], true
		}
	}
	return nil, false
}

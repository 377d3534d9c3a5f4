package calculator

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverrideField identifies which editable field an override (or an invalid
// input) refers to.
type OverrideField string

const (
	FieldGroupPrice     OverrideField = "group_price"
	FieldUserPrice      OverrideField = "user_price"
	FieldUserMultiplier OverrideField = "user_multiplier"
)

// userOverrideKey is the typed (group token, user) pair user-level overrides
// are stored under.
type userOverrideKey struct {
	GroupToken string
	UserID     uuid.UUID
}

// UserOverride holds the optional per-user replacement values. The multiplier
// is kept in operator units exactly as entered; division by the multiplier
// divisor happens only during recalculation.
type UserOverride struct {
	Price      *decimal.Decimal
	Multiplier *decimal.Decimal
}

// InvalidField records an operator input that did not parse as a number. The
// engine treats it as "no override"; the presentation layer uses the record to
// highlight the offending field.
type InvalidField struct {
	GroupToken string
	UserID     *uuid.UUID
	Field      OverrideField
	Input      string
}

// Overrides is the sparse store of operator-entered edits. Absence of an entry
// always means "use the baseline/group value", never zero. Setting a value is
// idempotent and triggers no recomputation; recalculation is a separate,
// explicit step.
type Overrides struct {
	groupPrices map[string]decimal.Decimal
	users       map[userOverrideKey]UserOverride
	invalid     []InvalidField
}

// NewOverrides creates an empty override store.
func NewOverrides() *Overrides {
	return &Overrides{
		groupPrices: make(map[string]decimal.Decimal),
		users:       make(map[userOverrideKey]UserOverride),
	}
}

// SetGroupPrice replaces the price for every user in the group unless a
// per-user price supersedes it.
func (o *Overrides) SetGroupPrice(groupToken string, price decimal.Decimal) {
	o.groupPrices[groupToken] = price
}

// SetUserPrice replaces the effective price for one user in one group.
func (o *Overrides) SetUserPrice(groupToken string, userID uuid.UUID, price decimal.Decimal) {
	key := userOverrideKey{GroupToken: groupToken, UserID: userID}
	override := o.users[key]
	override.Price = &price
	o.users[key] = override
}

// SetUserMultiplier replaces one user's multiplier figure, in operator units.
func (o *Overrides) SetUserMultiplier(groupToken string, userID uuid.UUID, multiplier decimal.Decimal) {
	key := userOverrideKey{GroupToken: groupToken, UserID: userID}
	override := o.users[key]
	override.Multiplier = &multiplier
	o.users[key] = override
}

// SetGroupPriceInput parses raw operator text for a group price. Unparseable
// input is flagged and otherwise ignored.
func (o *Overrides) SetGroupPriceInput(groupToken, input string) {
	price, ok := o.parseInput(InvalidField{GroupToken: groupToken, Field: FieldGroupPrice, Input: input})
	if ok {
		o.SetGroupPrice(groupToken, price)
	}
}

// SetUserPriceInput parses raw operator text for a per-user price.
func (o *Overrides) SetUserPriceInput(groupToken string, userID uuid.UUID, input string) {
	price, ok := o.parseInput(InvalidField{GroupToken: groupToken, UserID: &userID, Field: FieldUserPrice, Input: input})
	if ok {
		o.SetUserPrice(groupToken, userID, price)
	}
}

// SetUserMultiplierInput parses raw operator text for a per-user multiplier
// figure (operator units).
func (o *Overrides) SetUserMultiplierInput(groupToken string, userID uuid.UUID, input string) {
	multiplier, ok := o.parseInput(InvalidField{GroupToken: groupToken, UserID: &userID, Field: FieldUserMultiplier, Input: input})
	if ok {
		o.SetUserMultiplier(groupToken, userID, multiplier)
	}
}

// parseInput parses the raw value carried in the candidate flag record and
// either returns the parsed number or records the flag.
func (o *Overrides) parseInput(candidate InvalidField) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(strings.TrimSpace(candidate.Input))
	if err != nil {
		o.invalid = append(o.invalid, candidate)
		return decimal.Decimal{}, false
	}
	return value, true
}

// GroupPrice returns the group-level price override, if any.
func (o *Overrides) GroupPrice(groupToken string) (decimal.Decimal, bool) {
	price, ok := o.groupPrices[groupToken]
	return price, ok
}

// UserPrice returns the per-user price override, if any.
func (o *Overrides) UserPrice(groupToken string, userID uuid.UUID) (decimal.Decimal, bool) {
	override, ok := o.users[userOverrideKey{GroupToken: groupToken, UserID: userID}]
	if !ok || override.Price == nil {
		return decimal.Decimal{}, false
	}
	return *override.Price, true
}

// UserMultiplier returns the per-user multiplier override in operator units, if any.
func (o *Overrides) UserMultiplier(groupToken string, userID uuid.UUID) (decimal.Decimal, bool) {
	override, ok := o.users[userOverrideKey{GroupToken: groupToken, UserID: userID}]
	if !ok || override.Multiplier == nil {
		return decimal.Decimal{}, false
	}
	return *override.Multiplier, true
}

// InvalidFields returns the inputs that failed to parse since the store was
// created or last cleared.
func (o *Overrides) InvalidFields() []InvalidField {
	return o.invalid
}

// IsEmpty reports whether no override is set.
func (o *Overrides) IsEmpty() bool {
	return len(o.groupPrices) == 0 && len(o.users) == 0
}

// Clear removes all overrides and flagged fields.
func (o *Overrides) Clear() {
	o.groupPrices = make(map[string]decimal.Decimal)
	o.users = make(map[userOverrideKey]UserOverride)
	o.invalid = nil
}

// Package valueobject defines immutable value types shared across the domain layer.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// GroupKeyDelimiter separates the price and type-name parts of a group key token.
// Work type names must not contain it.
const GroupKeyDelimiter = "|"

// GroupKey is the composite key a calculator report group is identified by:
// the nominal price per unit the rows were grouped under, and the work type name.
type GroupKey struct {
	PricePerUnit decimal.Decimal
	TypeName     string
}

// NewGroupKey creates a GroupKey from its parts.
func NewGroupKey(pricePerUnit decimal.Decimal, typeName string) GroupKey {
	return GroupKey{
		PricePerUnit: pricePerUnit,
		TypeName:     typeName,
	}
}

// Token serializes the key as "{pricePerUnit}|{typeName}" for use as a map key.
// The encoding round-trips losslessly through ParseGroupKey.
func (k GroupKey) Token() string {
	return k.PricePerUnit.String() + GroupKeyDelimiter + k.TypeName
}

// ParseGroupKey decodes a group key token. The token is split on the first
// delimiter occurrence, so type names containing the delimiter still decode
// to the correct price part.
func ParseGroupKey(token string) (GroupKey, error) {
	priceStr, typeName, found := strings.Cut(token, GroupKeyDelimiter)
	if !found {
		return GroupKey{}, domainerror.NewCalculatorError(
			domainerror.ErrCodeMalformedGroupKey,
			"group key is missing the price/type delimiter: "+token,
			domainerror.ErrMalformedGroupKey,
		)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return GroupKey{}, domainerror.NewCalculatorError(
			domainerror.ErrCodeMalformedGroupKey,
			"group key price part is not numeric: "+priceStr,
			domainerror.ErrMalformedGroupKey,
		)
	}

	return GroupKey{PricePerUnit: price, TypeName: typeName}, nil
}

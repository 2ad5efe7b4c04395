package amount

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/domain"
)

const (
	// Decimals between the display unit and the base unit
	Decimals = 6

	BaseUnit    = "uxion"
	DisplayUnit = "XION"
)

var scale = decimal.New(1, Decimals)

// ToBaseUnits converts "10", "10 XION", "10.5xion" or "10000000 uxion" into a
// base unit integer string. Amounts without a unit are read as XION and
// fractions below one base unit are floored; uxion amounts must be integers.
func ToBaseUnits(input string) (string, error) {
	s := strings.TrimSpace(input)
	lower := strings.ToLower(s)

	isBase := false
	switch {
	// uxion contains xion, so it has to be checked first
	case strings.HasSuffix(lower, BaseUnit):
		isBase = true
		s = s[:len(s)-len(BaseUnit)]
	case strings.HasSuffix(lower, strings.ToLower(DisplayUnit)):
		s = s[:len(s)-len(DisplayUnit)]
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", xerrors.Errorf("%q: %w", input, domain.ErrInvalidAmount)
	}
	if d.IsNegative() {
		return "", xerrors.Errorf("%q is negative: %w", input, domain.ErrInvalidAmount)
	}
	if isBase && !d.Equal(d.Floor()) {
		return "", xerrors.Errorf("%q is not a whole number of %s: %w", input, BaseUnit, domain.ErrInvalidAmount)
	}
	if !isBase {
		d = d.Mul(scale)
	}
	return d.Floor().String(), nil
}

// Parse reads a base unit integer string as returned by the contract.
func Parse(baseUnits string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(baseUnits))
	if err != nil || !d.Equal(d.Floor()) || d.IsNegative() {
		return decimal.Zero, xerrors.Errorf("%q is not a base unit amount: %w", baseUnits, domain.ErrInvalidAmount)
	}
	return d, nil
}

// ToDisplayUnits renders base units as "12.500000 XION".
func ToDisplayUnits(baseUnits string) (string, error) {
	d, err := Parse(baseUnits)
	if err != nil {
		return "", err
	}
	return Format(d), nil
}

// Format renders a base unit amount, fractions included, as XION with six decimals.
func Format(baseUnits decimal.Decimal) string {
	return baseUnits.DivRound(scale, Decimals).StringFixed(Decimals) + " " + DisplayUnit
}

// MustDisplay is ToDisplayUnits for values already validated by the contract;
// unparsable input is echoed back with the base unit.
func MustDisplay(baseUnits string) string {
	s, err := ToDisplayUnits(baseUnits)
	if err != nil {
		return baseUnits + " " + BaseUnit
	}
	return s
}

type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

var (
	midFloor  = decimal.New(10, Decimals)
	highFloor = decimal.New(100, Decimals)
)

// TierOf buckets a price for display: below 10 XION, below 100 XION, and the rest.
func TierOf(baseUnits decimal.Decimal) Tier {
	switch {
	case baseUnits.LessThan(midFloor):
		return TierLow
	case baseUnits.LessThan(highFloor):
		return TierMid
	}
	return TierHigh
}

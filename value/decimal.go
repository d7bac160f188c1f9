package value

import (
	"math/big"
	"strings"
)

// Decimal is an exact base-10 scalar. Two Decimals constructed from the
// same literal always compare equal, regardless of what double-precision
// rounding would do to that literal — the property field.Cell's decimal
// variant relies on for committed monetary values.
type Decimal struct {
	rat *big.Rat
}

// Zero is the additive identity.
var Zero = Decimal{rat: new(big.Rat)}

// NewFromString parses an exact base-10 literal such as "15000" or
// "19.99". Scientific notation and big.Rat's "n/d" fraction syntax are
// both accepted, since big.Rat.SetString accepts them; ErrInvalidDecimal
// is returned for anything else.
func NewFromString(s string) (Decimal, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, decimalErrorf("NewFromString", ErrInvalidDecimal)
	}
	return Decimal{rat: r}, nil
}

// NewFromInt builds an exact Decimal from an integer.
func NewFromInt(n int64) Decimal {
	return Decimal{rat: new(big.Rat).SetInt64(n)}
}

// NewFromFloat builds a Decimal from a float64. The float is taken
// as-is (big.Rat.SetFloat64 reproduces its exact binary value) — callers
// that need an exact decimal literal should use NewFromString instead.
func NewFromFloat(f float64) Decimal {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Zero
	}
	return Decimal{rat: r}
}

// Float64 converts d to a double for geometry: the one lossy operation
// Decimal permits, used only when encoding a field into a
// statevector.Vector coordinate.
func (d Decimal) Float64() float64 {
	if d.rat == nil {
		return 0
	}
	f, _ := d.rat.Float64()
	return f
}

// Add returns d+other, exactly.
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{rat: new(big.Rat).Add(d.ratOrZero(), other.ratOrZero())}
}

// Sub returns d-other, exactly.
func (d Decimal) Sub(other Decimal) Decimal {
	return Decimal{rat: new(big.Rat).Sub(d.ratOrZero(), other.ratOrZero())}
}

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than
// other.
func (d Decimal) Cmp(other Decimal) int {
	return d.ratOrZero().Cmp(other.ratOrZero())
}

// String renders d in decimal form, e.g. "19.99".
func (d Decimal) String() string {
	if d.rat == nil {
		return "0"
	}
	s := d.rat.FloatString(ratScale(d.rat))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

func (d Decimal) ratOrZero() *big.Rat {
	if d.rat == nil {
		return new(big.Rat)
	}
	return d.rat
}

// ratScale picks a display scale generous enough to round-trip common
// monetary literals (up to 8 fractional digits) without printing a long
// repeating-fraction tail for values like 1/3.
func ratScale(r *big.Rat) int {
	if r.IsInt() {
		return 0
	}
	return 8
}

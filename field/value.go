package field

import (
	"fmt"
	"math"

	"github.com/jaredlewiswechs/newtonfield/value"
)

// Kind tags a Value's variant.
type Kind int

const (
	KindDecimal Kind = iota
	KindBool
	KindInt
	KindFloat
	KindLabel
)

// String renders the Kind's name.
func (k Kind) String() string {
	switch k {
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Value is the tagged union a field.Cell holds: exact decimal, boolean,
// integer, raw double, or a labelled string position on a Cell's
// StatePath (spec §3's "typed encoding" table).
type Value struct {
	kind    Kind
	decimal value.Decimal
	boolean bool
	integer int64
	float   float64
	label   string
}

// NewDecimal wraps an exact value.Decimal.
func NewDecimal(d value.Decimal) Value { return Value{kind: KindDecimal, decimal: d} }

// NewBool wraps a boolean.
func NewBool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// NewInt wraps an integer.
func NewInt(n int64) Value { return Value{kind: KindInt, integer: n} }

// NewFloat wraps a raw double.
func NewFloat(f float64) Value { return Value{kind: KindFloat, float: f} }

// NewLabel wraps a string label, meaningful together with a Cell's
// attached StatePath.
func NewLabel(label string) Value { return Value{kind: KindLabel, label: label} }

// Kind reports v's variant.
func (v Value) Kind() Kind { return v.kind }

// Decimal returns v's decimal payload; ok is false if v.Kind() != KindDecimal.
func (v Value) Decimal() (value.Decimal, bool) {
	return v.decimal, v.kind == KindDecimal
}

// Bool returns v's boolean payload; ok is false if v.Kind() != KindBool.
func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// Int returns v's integer payload; ok is false if v.Kind() != KindInt.
func (v Value) Int() (int64, bool) {
	return v.integer, v.kind == KindInt
}

// Float returns v's float payload; ok is false if v.Kind() != KindFloat.
func (v Value) Float() (float64, bool) {
	return v.float, v.kind == KindFloat
}

// Label returns v's label payload; ok is false if v.Kind() != KindLabel.
func (v Value) Label() (string, bool) {
	return v.label, v.kind == KindLabel
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindDecimal:
		return v.decimal.String()
	case KindBool:
		return fmt.Sprintf("%t", v.boolean)
	case KindInt:
		return fmt.Sprintf("%d", v.integer)
	case KindFloat:
		return fmt.Sprintf("%g", v.float)
	case KindLabel:
		return v.label
	default:
		return "<invalid value>"
	}
}

// encode converts v to its double encoding (spec §3). path is the
// enclosing cell's StatePath, consulted only for KindLabel values.
func (v Value) encode(path []string) float64 {
	switch v.kind {
	case KindDecimal:
		return v.decimal.Float64()
	case KindInt:
		return float64(v.integer)
	case KindFloat:
		return v.float
	case KindBool:
		if v.boolean {
			return 1.0
		}
		return 0.0
	case KindLabel:
		for i, label := range path {
			if label == v.label {
				return float64(i)
			}
		}
		return -1
	default:
		return 0
	}
}

// decodeValue reconstructs a typed Value from a raw double, given the
// Kind and (for KindLabel) StatePath that produced it. It is the inverse
// of encode, used to turn an arbitrary statevector.Vector coordinate
// sampled mid-curve back into a typed field value for rule evaluation.
func decodeValue(raw float64, kind Kind, path []string) Value {
	switch kind {
	case KindDecimal:
		return NewDecimal(value.NewFromFloat(raw))
	case KindInt:
		return NewInt(int64(math.Round(raw)))
	case KindFloat:
		return NewFloat(raw)
	case KindBool:
		return NewBool(raw >= 0.5)
	case KindLabel:
		idx := int(raw + 0.5)
		if idx < 0 {
			idx = 0
		}
		if idx >= len(path) {
			idx = len(path) - 1
		}
		if idx < 0 {
			return NewLabel("")
		}
		return NewLabel(path[idx])
	default:
		return Value{}
	}
}

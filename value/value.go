// Package value provides the typed wrappers stored in the fields of structured
// value objects. A wrapper only exposes its raw form through GetValue.
package value

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a typed field value.
type Value interface {
	// GetValue returns the raw value held by the wrapper.
	GetValue() any
}

// Int wraps an int64.
type Int int64

func (v Int) GetValue() any { return int64(v) }

// Float wraps a float64.
type Float float64

func (v Float) GetValue() any { return float64(v) }

// String wraps a string.
type String string

func (v String) GetValue() any { return string(v) }

// Bool wraps a bool.
type Bool bool

func (v Bool) GetValue() any { return bool(v) }

// UUID wraps a uuid.UUID.
type UUID uuid.UUID

func (v UUID) GetValue() any { return uuid.UUID(v) }

func (v UUID) String() string { return uuid.UUID(v).String() }

// Decimal wraps an arbitrary precision decimal.
type Decimal struct {
	d decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d: d}
}

func (v Decimal) GetValue() any { return v.d }

func (v Decimal) String() string { return v.d.String() }

// Any wraps a value of a field that declares no kind.
type Any struct {
	v any
}

func NewAny(v any) Any {
	return Any{v: v}
}

func (v Any) GetValue() any { return v.v }

package value

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IsScalar reports whether v is a single raw value: a bool, integer, float or
// string (named types included), a uuid.UUID, a decimal.Decimal, or a Value
// wrapping one of those.
func IsScalar(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case uuid.UUID, decimal.Decimal:
		return true
	case Value:
		return IsScalar(x.GetValue())
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// Equal compares two raw values. Decimals compare by numeric value, every
// other pair must share the dynamic type and hold deeply equal values, so
// int64(1) and "1" are different.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if da, ok := a.(decimal.Decimal); ok {
		db, ok := b.(decimal.Decimal)
		return ok && da.Equal(db)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

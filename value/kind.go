package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
)

// Kind names the wrapper a field value is cast into.
type Kind string

const (
	// KindAny accepts any value, inferring the wrapper from the Go type.
	KindAny     Kind = ""
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindString  Kind = "string"
	KindBool    Kind = "bool"
	KindUUID    Kind = "uuid"
	KindDecimal Kind = "decimal"
)

func (k Kind) String() string {
	if k == KindAny {
		return "any"
	}
	return string(k)
}

// ParseKind returns the kind called name. "" and "any" are KindAny.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "any":
		return KindAny, nil
	case "int", "integer":
		return KindInt, nil
	case "float", "double":
		return KindFloat, nil
	case "string":
		return KindString, nil
	case "bool", "boolean":
		return KindBool, nil
	case "uuid":
		return KindUUID, nil
	case "decimal":
		return KindDecimal, nil
	default:
		return KindAny, fmt.Errorf("value: %w %q", ErrUnknownKind, name)
	}
}

// Accepts reports whether v already is the wrapper of this kind.
func (k Kind) Accepts(v any) bool {
	var ok bool
	switch k {
	case KindInt:
		_, ok = v.(Int)
	case KindFloat:
		_, ok = v.(Float)
	case KindString:
		_, ok = v.(String)
	case KindBool:
		_, ok = v.(Bool)
	case KindUUID:
		_, ok = v.(UUID)
	case KindDecimal:
		_, ok = v.(Decimal)
	case KindAny:
		_, ok = v.(Value)
	}
	return ok
}

// Cast converts v into the wrapper of this kind. A nil v casts to a nil Value.
func (k Kind) Cast(v any) (Value, error) {
	if v == nil {
		return nil, nil
	}
	if k.Accepts(v) {
		return v.(Value), nil
	}
	if k == KindAny {
		return Of(v)
	}
	src := v
	if w, ok := v.(Value); ok {
		v = w.GetValue()
	}
	if m, ok := v.(proto.Message); ok {
		raw, err := fromProto(m)
		if err != nil {
			return nil, newCastError(k, src, err)
		}
		v = raw
	}
	if v == nil {
		return nil, nil
	}
	var (
		res Value
		err error
	)
	switch k {
	case KindInt:
		res, err = toInt(v)
	case KindFloat:
		res, err = toFloat(v)
	case KindString:
		res, err = toString(v)
	case KindBool:
		res, err = toBool(v)
	case KindUUID:
		res, err = toUUID(v)
	case KindDecimal:
		res, err = toDecimal(v)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownKind, string(k))
	}
	if err != nil {
		return nil, newCastError(k, src, err)
	}
	return res, nil
}

// Of infers the wrapper for v from its Go type. Values without a scalar
// wrapper are wrapped in Any.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return x, nil
	case uuid.UUID:
		return UUID(x), nil
	case decimal.Decimal:
		return NewDecimal(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		if f, err := x.Float64(); err == nil {
			if v, err := intFromFloat(f); err == nil {
				return v, nil
			}
		}
		return KindFloat.Cast(x)
	case proto.Message:
		raw, err := fromProto(x)
		if err != nil {
			return nil, newCastError(KindAny, v, err)
		}
		return Of(raw)
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt.Cast(v)
	case reflect.Float32, reflect.Float64:
		return KindFloat.Cast(v)
	case reflect.String:
		return KindString.Cast(v)
	case reflect.Bool:
		return KindBool.Cast(v)
	}
	return NewAny(v), nil
}

func toInt(v any) (Value, error) {
	if d, ok := v.(decimal.Decimal); ok {
		if !d.IsInteger() {
			return nil, ErrLossy
		}
		return Int(d.IntPart()), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, ErrOverflow
		}
		return Int(u), nil
	case reflect.Float32, reflect.Float64:
		return intFromFloat(rv.Float())
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return Int(i), nil
		}
		// 1.0 and 1e3 are integers too.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil, err
		}
		return intFromFloat(f)
	}
	return nil, ErrUnsupported
}

func intFromFloat(f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, ErrOverflow
	}
	if f != math.Trunc(f) {
		return nil, ErrLossy
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, ErrOverflow
	}
	return Int(f), nil
}

func toFloat(v any) (Value, error) {
	if d, ok := v.(decimal.Decimal); ok {
		f, _ := d.Float64()
		return Float(f), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Float(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Float(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	}
	return nil, ErrUnsupported
}

func toString(v any) (Value, error) {
	switch x := v.(type) {
	case uuid.UUID:
		return String(x.String()), nil
	case decimal.Decimal:
		return String(x.String()), nil
	case []byte:
		return String(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return String(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return String(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return String(strconv.FormatFloat(rv.Float(), 'f', -1, 64)), nil
	case reflect.Bool:
		return String(strconv.FormatBool(rv.Bool())), nil
	}
	return nil, ErrUnsupported
}

func toBool(v any) (Value, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		b, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	}
	return nil, ErrUnsupported
}

func toUUID(v any) (Value, error) {
	switch x := v.(type) {
	case uuid.UUID:
		return UUID(x), nil
	case [16]byte:
		return UUID(x), nil
	case []byte:
		id, err := uuid.FromBytes(x)
		if err != nil {
			return nil, err
		}
		return UUID(id), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		id, err := uuid.Parse(rv.String())
		if err != nil {
			return nil, err
		}
		return UUID(id), nil
	}
	return nil, ErrUnsupported
}

func toDecimal(v any) (Value, error) {
	if d, ok := v.(decimal.Decimal); ok {
		return NewDecimal(d), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewDecimal(decimal.NewFromInt(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		d, err := decimal.NewFromString(strconv.FormatUint(rv.Uint(), 10))
		if err != nil {
			return nil, err
		}
		return NewDecimal(d), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrUnsupported
		}
		return NewDecimal(decimal.NewFromFloat(f)), nil
	case reflect.String:
		d, err := decimal.NewFromString(strings.TrimSpace(rv.String()))
		if err != nil {
			return nil, err
		}
		return NewDecimal(d), nil
	}
	return nil, ErrUnsupported
}

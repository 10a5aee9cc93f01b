package entity

import (
	"fmt"
	"strings"

	"github.com/go-leo/valueobject/value"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
)

// PrimaryKey returns the identity of the entity:
//   - nil when the type declares no primary key field,
//   - the raw value of the field when it declares exactly one,
//   - a CompositeKey in declaration order otherwise.
func (e *Entity) PrimaryKey() any {
	if !e.valid() {
		return nil
	}
	fields := e.typ.primaryKey
	switch len(fields) {
	case 0:
		return nil
	case 1:
		return e.Value(fields[0])
	}
	values := make(map[string]any, len(fields))
	for _, field := range fields {
		values[field] = e.Value(field)
	}
	return CompositeKey{fields: fields, values: values}
}

// CompositeKey maps the fields of a multi field primary key to their raw
// values, keeping the declaration order of the fields.
type CompositeKey struct {
	fields []string
	values map[string]any
}

// NewCompositeKey builds a key over fields, taking their values from values.
func NewCompositeKey(fields []string, values map[string]any) CompositeKey {
	k := CompositeKey{fields: slices.Clone(fields), values: make(map[string]any, len(fields))}
	for _, field := range fields {
		k.values[field] = values[field]
	}
	return k
}

func (k CompositeKey) Fields() []string {
	return slices.Clone(k.fields)
}

// Keys is Fields. It lets a CompositeKey be checked with
// Type.ConformsToPrimaryKey.
func (k CompositeKey) Keys() []string {
	return k.Fields()
}

func (k CompositeKey) Get(field string) (any, bool) {
	v, ok := k.values[field]
	return v, ok
}

func (k CompositeKey) Len() int {
	return len(k.fields)
}

func (k CompositeKey) Map() map[string]any {
	m := make(map[string]any, len(k.values))
	for field, v := range k.values {
		m[field] = v
	}
	return m
}

// Equal reports whether both keys have the same fields with equal raw values.
// Field order does not matter.
func (k CompositeKey) Equal(other CompositeKey) bool {
	if len(k.values) != len(other.values) {
		return false
	}
	for field, v := range k.values {
		w, ok := other.values[field]
		if !ok || !value.Equal(v, w) {
			return false
		}
	}
	return true
}

func (k CompositeKey) String() string {
	parts := make([]string, 0, len(k.fields))
	for _, field := range k.fields {
		parts = append(parts, fmt.Sprintf("%s=%v", field, k.values[field]))
	}
	return strings.Join(parts, ",")
}

func (k CompositeKey) MarshalJSON() ([]byte, error) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)
	stream.WriteObjectStart()
	for i, field := range k.fields {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(field)
		stream.WriteVal(k.values[field])
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func keysEqual(a, b any) bool {
	ka, okA := a.(CompositeKey)
	kb, okB := b.(CompositeKey)
	if okA || okB {
		return okA && okB && ka.Equal(kb)
	}
	return value.Equal(a, b)
}

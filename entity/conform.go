package entity

import (
	"reflect"

	"github.com/go-leo/valueobject/value"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/types/known/structpb"
)

// KeySet is structured data exposing an enumerable set of keys.
// CompositeKey, *Entity and *valueobject.Object implement it.
type KeySet interface {
	Keys() []string
}

// ConformsToPrimaryKey reports whether candidate has the shape of a primary
// key value of the type. Values are never inspected, only their shape.
//
// For a single field key any scalar conforms, as does structured data holding
// exactly that one field. For a composite key only structured data whose key
// set equals the declared fields conforms. Structured data is a KeySet, a map
// with string keys or a *structpb.Struct. Types without primary key accept
// nothing.
func (t *Type) ConformsToPrimaryKey(candidate any) bool {
	switch len(t.primaryKey) {
	case 0:
		return false
	case 1:
		if value.IsScalar(candidate) {
			return true
		}
		keys, ok := keySetOf(candidate)
		return ok && len(keys) == 1 && keys[0] == t.primaryKey[0]
	}
	keys, ok := keySetOf(candidate)
	if !ok || len(keys) != len(t.primaryKey) {
		return false
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if !slices.Contains(t.primaryKey, key) {
			return false
		}
		seen[key] = struct{}{}
	}
	return len(seen) == len(t.primaryKey)
}

func keySetOf(candidate any) ([]string, bool) {
	if candidate == nil {
		return nil, false
	}
	rv := reflect.ValueOf(candidate)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	switch c := candidate.(type) {
	case KeySet:
		return c.Keys(), true
	case *structpb.Struct:
		keys := make([]string, 0, len(c.GetFields()))
		for key := range c.GetFields() {
			keys = append(keys, key)
		}
		return keys, true
	case value.Value:
		return keySetOf(c.GetValue())
	}
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		return keys, true
	}
	return nil, false
}

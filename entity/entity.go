// Package entity implements identity bearing value objects.
//
// An Entity is a structured value object whose non key fields stay mutable
// while its primary key fields are write once: they are fixed during
// construction and every later write to them fails with an
// *ImmutableKeyFieldError. Entities compare two ways, IsSame over all fields
// and IsEqual over the primary key only. Both require the exact same Type.
//
//	var users = entity.MustNewType("user",
//		entity.WithFields(
//			valueobject.Field{Name: "id", Kind: value.KindInt},
//			valueobject.Field{Name: "name", Kind: value.KindString},
//		),
//		entity.WithPrimaryKey("id"),
//	)
//
//	u, err := users.New(map[string]any{"id": 42, "name": "gopher"})
package entity

import (
	"fmt"

	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/value"
	"github.com/go-leo/valueobject/valueobject"
)

var _ ddd.Entity[*Entity] = (*Entity)(nil)

// Entity is an instance of a Type, built by Type.New. The zero Entity holds no
// fields and refuses every write. It is not safe for concurrent use.
type Entity struct {
	typ *Type
	obj *valueobject.Object
}

func (e *Entity) Type() *Type {
	return e.typ
}

// Set writes field. All writes, including those made during construction, go
// through Set: primary key fields are rejected once the entity is
// constructed, any other value is cast into the field's wrapper and stored.
// Writing nil unsets a field unless it is required.
func (e *Entity) Set(field string, v any) error {
	if !e.valid() {
		return ErrUninitialized
	}
	if e.obj.Constructed() && e.typ.IsPrimaryKeyField(field) {
		return &ImmutableKeyFieldError{Type: e.typ.name, Field: field}
	}
	var res value.Value
	if e.obj.NeedCasting(field, v) {
		var err error
		if res, err = e.obj.InnerCast(field, v); err != nil {
			return err
		}
	} else {
		res = v.(value.Value)
	}
	if res == nil && e.obj.Constructed() {
		if f, ok := e.typ.schema.Field(field); ok && f.Required {
			return fmt.Errorf("entity: %w %q", valueobject.ErrMissingField, field)
		}
	}
	e.obj.InnerSet(field, res)
	return nil
}

// Get returns the wrapper stored under field, nil when unset.
func (e *Entity) Get(field string) value.Value {
	if !e.valid() {
		return nil
	}
	v, _ := e.obj.Get(field)
	return v
}

// Value returns the raw value stored under field, nil when unset.
func (e *Entity) Value(field string) any {
	if !e.valid() {
		return nil
	}
	v, ok := e.obj.Get(field)
	if !ok {
		return nil
	}
	return v.GetValue()
}

func (e *Entity) Has(field string) bool {
	if !e.valid() {
		return false
	}
	_, ok := e.obj.Get(field)
	return ok
}

// Keys returns the names of the fields holding a value.
func (e *Entity) Keys() []string {
	if !e.valid() {
		return nil
	}
	return e.obj.Keys()
}

// ToMap returns the raw values of all fields.
func (e *Entity) ToMap() map[string]any {
	if !e.valid() {
		return map[string]any{}
	}
	return e.obj.ToMap()
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	if !e.valid() {
		return nil, ErrUninitialized
	}
	return e.obj.MarshalJSON()
}

// IsSame reports whether other is of the same Type and holds equal values in
// every field.
func (e *Entity) IsSame(other *Entity) bool {
	if !e.valid() || !other.valid() {
		return false
	}
	return e.typ == other.typ && e.obj.IsSame(other.obj)
}

// IsEqual reports whether other is of the same Type and has an equal primary
// key. Non key fields are ignored. Entities of a type without primary key are
// equal to every entity of their type.
func (e *Entity) IsEqual(other *Entity) bool {
	if !e.valid() || !other.valid() {
		return false
	}
	return e.typ == other.typ && keysEqual(e.PrimaryKey(), other.PrimaryKey())
}

func (e *Entity) valid() bool {
	return e != nil && e.typ != nil && e.obj != nil
}

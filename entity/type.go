package entity

import (
	"fmt"

	"github.com/go-leo/valueobject/valueobject"
	"golang.org/x/exp/slices"
)

// DefaultPrimaryKeyField keys types that declare no primary key of their own.
const DefaultPrimaryKeyField = "__id"

// Type declares a concrete kind of entity: its schema and its primary key.
// The *Type pointer is the identity of the type, two types declared apart are
// different even when their declarations match.
type Type struct {
	name       string
	schema     *valueobject.Schema
	primaryKey []string
}

// NewType declares an entity type. Primary key fields missing from the
// declared fields are added to the schema as untyped fields.
func NewType(name string, opts ...Option) (*Type, error) {
	o := new(options).apply(opts...)

	primaryKey := []string{DefaultPrimaryKeyField}
	if o.PrimaryKeySet {
		primaryKey = o.PrimaryKey
	}
	seen := make(map[string]struct{}, len(primaryKey))
	for _, field := range primaryKey {
		if field == "" {
			return nil, fmt.Errorf("entity: type %q: %w", name, ErrEmptyKeyField)
		}
		if _, ok := seen[field]; ok {
			return nil, fmt.Errorf("entity: type %q: %w %q", name, ErrDuplicateKeyField, field)
		}
		seen[field] = struct{}{}
	}

	schema, err := o.Schema.With(o.Fields...)
	if err != nil {
		return nil, fmt.Errorf("entity: type %q: %w", name, err)
	}
	var implicit []valueobject.Field
	for _, field := range primaryKey {
		if !schema.Has(field) {
			implicit = append(implicit, valueobject.Field{Name: field})
		}
	}
	if len(implicit) > 0 {
		if schema, err = schema.With(implicit...); err != nil {
			return nil, fmt.Errorf("entity: type %q: %w", name, err)
		}
	}
	return &Type{name: name, schema: schema, primaryKey: slices.Clone(primaryKey)}, nil
}

// MustNewType is like NewType but panics on error.
func MustNewType(name string, opts ...Option) *Type {
	t, err := NewType(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Type) Name() string {
	return t.name
}

func (t *Type) Schema() *valueobject.Schema {
	return t.schema
}

// PrimaryKeyFields returns the declared primary key fields in declaration order.
func (t *Type) PrimaryKeyFields() []string {
	return slices.Clone(t.primaryKey)
}

// IsPrimaryKeyScalar reports whether the primary key is a single field.
func (t *Type) IsPrimaryKeyScalar() bool {
	return len(t.primaryKey) == 1
}

func (t *Type) IsPrimaryKeyField(field string) bool {
	return slices.Contains(t.primaryKey, field)
}

// New constructs an entity of the type. Every field of data is written
// through Entity.Set while the entity is still being built.
func (t *Type) New(data map[string]any) (*Entity, error) {
	e := &Entity{typ: t, obj: valueobject.Build(t.schema)}
	if err := valueobject.Populate(t.schema, data, e.Set); err != nil {
		return nil, err
	}
	if err := e.obj.Seal(); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(data map[string]any) *Entity {
	e, err := t.New(data)
	if err != nil {
		panic(err)
	}
	return e
}

// NewFromJSON constructs an entity of the type from a JSON object.
func (t *Type) NewFromJSON(data []byte) (*Entity, error) {
	m, err := valueobject.Decode(data)
	if err != nil {
		return nil, err
	}
	return t.New(m)
}

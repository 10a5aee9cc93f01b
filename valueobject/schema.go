// Package valueobject implements schema driven structured value objects: named
// fields holding typed wrappers, a cast step in front of every write and a
// lifecycle flag separating construction from use.
package valueobject

import (
	"fmt"

	"github.com/go-leo/valueobject/value"
	"golang.org/x/exp/slices"
)

// Field declares one field of a schema.
type Field struct {
	// Name is the field name, unique within a schema.
	Name string
	// Kind is the wrapper written values are cast into. KindAny infers it.
	Kind value.Kind
	// Default is the raw value used when construction leaves the field unset.
	Default any
	// Required fails construction when the field is still unset after defaults.
	Required bool
	// OmitEmpty skips zero values when encoding to JSON.
	OmitEmpty bool
}

// Schema is an ordered set of fields.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema declares a schema. Field order is kept.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("valueobject: %w", ErrEmptyFieldName)
		}
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("valueobject: %w %q", ErrDuplicateField, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// With returns a new schema holding the fields of s followed by fields.
func (s *Schema) With(fields ...Field) (*Schema, error) {
	return NewSchema(append(s.Fields(), fields...)...)
}

func (s *Schema) Fields() []Field {
	if s == nil {
		return nil
	}
	return slices.Clone(s.fields)
}

func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return names
}

func (s *Schema) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

func (s *Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

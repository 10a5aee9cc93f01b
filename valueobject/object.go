package valueobject

import (
	"fmt"

	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/value"
	"golang.org/x/exp/slices"
)

var _ ddd.ValueObject[*Object] = (*Object)(nil)

// Object is a structured value object. It is Building until Seal is called
// and Constructed afterwards. An Object is not safe for concurrent use.
type Object struct {
	schema      *Schema
	fields      map[string]value.Value
	constructed bool
}

// Build returns an empty object of the schema in the Building state.
func Build(schema *Schema) *Object {
	if schema == nil {
		schema = MustSchema()
	}
	return &Object{schema: schema, fields: make(map[string]value.Value, schema.Len())}
}

// New constructs an immutable value object from data.
func New(schema *Schema, data map[string]any) (*Object, error) {
	o := Build(schema)
	if err := Populate(o.schema, data, o.Set); err != nil {
		return nil, err
	}
	if err := o.Seal(); err != nil {
		return nil, err
	}
	return o, nil
}

// NewFromJSON constructs an immutable value object from a JSON object.
func NewFromJSON(schema *Schema, data []byte) (*Object, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return New(schema, m)
}

// Populate writes data through set, declared fields first in schema order,
// then the remaining keys in sorted order.
func Populate(schema *Schema, data map[string]any, set func(field string, v any) error) error {
	for _, f := range schema.Fields() {
		v, ok := data[f.Name]
		if !ok {
			continue
		}
		if err := set(f.Name, v); err != nil {
			return err
		}
	}
	var extra []string
	for name := range data {
		if !schema.Has(name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	for _, name := range extra {
		if err := set(name, data[name]); err != nil {
			return err
		}
	}
	return nil
}

func (o *Object) Schema() *Schema {
	return o.schema
}

func (o *Object) Constructed() bool {
	return o.constructed
}

// Seal applies defaults, checks required fields and marks the object
// constructed. Sealing a constructed object does nothing.
func (o *Object) Seal() error {
	if o.constructed {
		return nil
	}
	for _, f := range o.schema.fields {
		if _, ok := o.fields[f.Name]; ok {
			continue
		}
		if f.Default != nil {
			v, err := o.InnerCast(f.Name, f.Default)
			if err != nil {
				return fmt.Errorf("valueobject: default of field %q: %w", f.Name, err)
			}
			o.InnerSet(f.Name, v)
		}
		if _, ok := o.fields[f.Name]; !ok && f.Required {
			return fmt.Errorf("valueobject: %w %q", ErrMissingField, f.Name)
		}
	}
	o.constructed = true
	return nil
}

// NeedCasting reports whether v has to go through InnerCast before it can be
// stored under field.
func (o *Object) NeedCasting(field string, v any) bool {
	f, ok := o.schema.Field(field)
	if !ok {
		return true
	}
	return !f.Kind.Accepts(v)
}

// InnerCast casts v into the wrapper declared for field.
func (o *Object) InnerCast(field string, v any) (value.Value, error) {
	f, ok := o.schema.Field(field)
	if !ok {
		return nil, fmt.Errorf("valueobject: %w %q", ErrUnknownField, field)
	}
	res, err := f.Kind.Cast(v)
	if err != nil {
		return nil, fmt.Errorf("valueobject: field %q: %w", field, err)
	}
	return res, nil
}

// InnerSet stores v under field without any check. A nil v unsets the field.
func (o *Object) InnerSet(field string, v value.Value) {
	if v == nil {
		delete(o.fields, field)
		return
	}
	o.fields[field] = v
}

// Set writes a field while the object is being built. Once constructed a value
// object never changes.
func (o *Object) Set(field string, v any) error {
	if o.constructed {
		return fmt.Errorf("valueobject: %w, can not set field %q", ErrImmutable, field)
	}
	res, err := o.Cast(field, v)
	if err != nil {
		return err
	}
	o.InnerSet(field, res)
	return nil
}

// Cast runs InnerCast only when NeedCasting asks for it.
func (o *Object) Cast(field string, v any) (value.Value, error) {
	if o.NeedCasting(field, v) {
		return o.InnerCast(field, v)
	}
	return v.(value.Value), nil
}

// Get returns the wrapper stored under field.
func (o *Object) Get(field string) (value.Value, bool) {
	v, ok := o.fields[field]
	return v, ok
}

// Keys returns the names of the fields holding a value, declared fields in
// schema order first.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.fields))
	for _, f := range o.schema.fields {
		if _, ok := o.fields[f.Name]; ok {
			keys = append(keys, f.Name)
		}
	}
	if len(keys) == len(o.fields) {
		return keys
	}
	var extra []string
	for name := range o.fields {
		if !o.schema.Has(name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

func (o *Object) Len() int {
	return len(o.fields)
}

// ToMap returns the raw values of all fields.
func (o *Object) ToMap() map[string]any {
	m := make(map[string]any, len(o.fields))
	for name, v := range o.fields {
		m[name] = v.GetValue()
	}
	return m
}

// IsSame reports whether other has the same schema and holds equal raw values
// in every field.
func (o *Object) IsSame(other *Object) bool {
	if o == other {
		return true
	}
	if o == nil || other == nil {
		return false
	}
	if o.schema != other.schema || len(o.fields) != len(other.fields) {
		return false
	}
	for name, v := range o.fields {
		w, ok := other.fields[name]
		if !ok || !value.Equal(v.GetValue(), w.GetValue()) {
			return false
		}
	}
	return true
}

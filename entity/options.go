package entity

import "github.com/go-leo/valueobject/valueobject"

type options struct {
	Schema        *valueobject.Schema
	Fields        []valueobject.Field
	PrimaryKey    []string
	PrimaryKeySet bool
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(o *options)

// WithSchema declares the fields of the type from an existing schema.
func WithSchema(schema *valueobject.Schema) Option {
	return func(o *options) {
		o.Schema = schema
	}
}

// WithFields declares fields of the type, after those of WithSchema.
func WithFields(fields ...valueobject.Field) Option {
	return func(o *options) {
		o.Fields = append(o.Fields, fields...)
	}
}

// WithPrimaryKey declares the ordered primary key fields. Without arguments
// the type has no identity key. Types that do not use this option are keyed by
// DefaultPrimaryKeyField.
func WithPrimaryKey(fields ...string) Option {
	return func(o *options) {
		o.PrimaryKey = append([]string{}, fields...)
		o.PrimaryKeySet = true
	}
}

package valueobject

import "errors"

var (
	// ErrUnknownField the field is not declared by the schema
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingField a required field has no value after construction
	ErrMissingField = errors.New("missing required field")

	// ErrImmutable the value object is already constructed
	ErrImmutable = errors.New("value object is immutable")

	// ErrDuplicateField the schema declares a field twice
	ErrDuplicateField = errors.New("duplicate field")

	// ErrEmptyFieldName the schema declares a field without a name
	ErrEmptyFieldName = errors.New("empty field name")
)

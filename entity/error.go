package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrImmutableKeyField a primary key field was written after construction
	ErrImmutableKeyField = errors.New("immutable key field")

	// ErrDuplicateKeyField the primary key declares a field twice
	ErrDuplicateKeyField = errors.New("duplicate primary key field")

	// ErrEmptyKeyField the primary key declares a field without a name
	ErrEmptyKeyField = errors.New("empty primary key field")

	// ErrUninitialized the entity was not built by Type.New
	ErrUninitialized = errors.New("entity: uninitialized entity")
)

// ImmutableKeyFieldError is returned by Entity.Set when the target field is
// part of the primary key of a constructed entity. It matches
// ErrImmutableKeyField with errors.Is.
type ImmutableKeyFieldError struct {
	Type  string
	Field string
}

func (e *ImmutableKeyFieldError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("entity: can not set field %q value because it is part of primary key", e.Field)
	}
	return fmt.Sprintf("entity: can not set field %q value of %s because it is part of primary key", e.Field, e.Type)
}

func (e *ImmutableKeyFieldError) Is(target error) bool {
	return target == ErrImmutableKeyField
}

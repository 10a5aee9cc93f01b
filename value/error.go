package value

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupported the source type can not be cast to the kind
	ErrUnsupported = errors.New("unsupported source type")

	// ErrOverflow the source value does not fit into the kind
	ErrOverflow = errors.New("overflow")

	// ErrLossy the conversion would drop information
	ErrLossy = errors.New("lossy conversion")

	// ErrUnknownKind the kind name is not recognized
	ErrUnknownKind = errors.New("unknown kind")
)

// CastError reports a failed cast of a raw value into a wrapper.
type CastError struct {
	Kind       Kind
	SourceType reflect.Type
	err        error
}

func (e *CastError) Error() string {
	src := "nil"
	if e.SourceType != nil {
		src = e.SourceType.String()
	}
	return fmt.Sprintf("value: can not cast type(%s) to kind(%s), %v", src, e.Kind, e.err)
}

func (e *CastError) Unwrap() error {
	return e.err
}

func newCastError(kind Kind, src any, err error) error {
	return &CastError{Kind: kind, SourceType: reflect.TypeOf(src), err: err}
}

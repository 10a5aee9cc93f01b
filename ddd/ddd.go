// Package ddd holds the sameness contracts of domain driven design.
package ddd

// ValueObject as described in the DDD book.
// Value objects compare by the values of all their attributes.
type ValueObject[T any] interface {
	// IsSame reports whether other is of the exact same type and holds equal
	// values in every attribute.
	IsSame(other T) bool
}

// Entity as explained in the DDD book.
// Entities compare by identity, not by attributes.
type Entity[T any] interface {
	ValueObject[T]

	// IsEqual reports whether other is of the exact same type and carries the
	// same primary key, regardless of other attributes.
	IsEqual(other T) bool

	// PrimaryKey returns the identity of this entity.
	PrimaryKey() any
}

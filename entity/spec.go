package entity

import "github.com/go-leo/valueobject/specification"

// KeyShape returns a specification satisfied by candidates conforming to the
// primary key of the type.
func (t *Type) KeyShape() specification.Specification[any] {
	return specification.New(t.ConformsToPrimaryKey)
}

// SameIdentity returns a specification satisfied by entities equal to e.
func SameIdentity(e *Entity) specification.Specification[*Entity] {
	return specification.New(e.IsEqual)
}

// SameValues returns a specification satisfied by entities that are the same
// as e in every field.
func SameValues(e *Entity) specification.Specification[*Entity] {
	return specification.New(e.IsSame)
}

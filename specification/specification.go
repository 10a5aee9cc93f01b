// Package specification composes boolean business rules.
package specification

// Specification is a predicate over T that composes with other specifications.
type Specification[T any] interface {
	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification satisfied when both the current and
	// another specification are.
	And(another Specification[T]) Specification[T]

	// Or create a new specification satisfied when either the current or
	// another specification is.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the inverse of the current one.
	Not() Specification[T]
}

// Func adapts a predicate function to a Specification.
type Func[T any] func(t T) bool

func (f Func[T]) IsSatisfiedBy(t T) bool { return f(t) }

func (f Func[T]) And(another Specification[T]) Specification[T] { return And[T](f, another) }

func (f Func[T]) Or(another Specification[T]) Specification[T] { return Or[T](f, another) }

func (f Func[T]) Not() Specification[T] { return Not[T](f) }

func New[T any](predicate func(t T) bool) Specification[T] {
	return Func[T](predicate)
}

func And[T any](left, right Specification[T]) Specification[T] {
	return All(left, right)
}

func Or[T any](left, right Specification[T]) Specification[T] {
	return Any(left, right)
}

func Not[T any](spec Specification[T]) Specification[T] {
	return Func[T](func(t T) bool {
		return !spec.IsSatisfiedBy(t)
	})
}

// All is satisfied when every spec is. An empty conjunction is always satisfied.
func All[T any](specs ...Specification[T]) Specification[T] {
	return Func[T](func(t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(t) {
				return false
			}
		}
		return true
	})
}

// Any is satisfied when at least one spec is. An empty disjunction never is.
func Any[T any](specs ...Specification[T]) Specification[T] {
	return Func[T](func(t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(t) {
				return true
			}
		}
		return false
	})
}

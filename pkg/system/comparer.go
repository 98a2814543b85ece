package system

// EqualityComparer compares values for equality on behalf of a container,
// in place of the values' own Equals and HashCode.
type EqualityComparer[T any] interface {
	Equals(a, b T) bool
	HashCode(v T) int
}

// DefaultComparer delegates to the values' own Object methods.
func DefaultComparer[T Object[T]]() EqualityComparer[T] {
	return defaultComparer[T]{}
}

type defaultComparer[T Object[T]] struct{}

func (defaultComparer[T]) Equals(a, b T) bool { return a.Equals(b) }

func (defaultComparer[T]) HashCode(v T) int { return v.HashCode() }

// ComparerFunc builds an EqualityComparer out of two functions.
type ComparerFunc[T any] struct {
	EqualsFunc   func(a, b T) bool
	HashCodeFunc func(v T) int
}

func (c ComparerFunc[T]) Equals(a, b T) bool { return c.EqualsFunc(a, b) }

func (c ComparerFunc[T]) HashCode(v T) int { return c.HashCodeFunc(v) }

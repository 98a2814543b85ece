// Package system defines the object contracts that bcl containers are built on,
// and the primitive value types that implement them.
//
// Containers never compare elements with ==.
// They rely on Equals, and the hashed ones on HashCode as well.
// A type that reports two values as equal must report the same HashCode for both.
package system

// Equatable is implemented by values that can tell whether they are equal to another value of the same type.
// Containers never call Equals on a nil reference, nor pass one to it:
// a nil reference is equal only to another nil reference.
type Equatable[T any] interface {
	Equals(other T) bool
}

type Hashable interface {
	HashCode() int
}

// Object is the contract of values used as keys in hashed containers.
type Object[T any] interface {
	Equatable[T]
	Hashable
}

// Disposable releases the references a value holds.
// Calling Dispose more than once must be safe.
type Disposable interface {
	Dispose()
}

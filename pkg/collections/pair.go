package collections

import (
	"fmt"

	"go.llib.dev/bcl/pkg/system"
	"go.llib.dev/bcl/pkg/zerokit"
)

// KeyValuePair is an immutable key and value couple.
type KeyValuePair[K system.Equatable[K], V system.Equatable[V]] struct {
	key   K
	value V
}

func PairOf[K system.Equatable[K], V system.Equatable[V]](key K, value V) KeyValuePair[K, V] {
	return KeyValuePair[K, V]{key: key, value: value}
}

func (p KeyValuePair[K, V]) Key() K { return p.key }

func (p KeyValuePair[K, V]) Value() V { return p.value }

// Equals reports whether both the keys and the values are equal.
func (p KeyValuePair[K, V]) Equals(other KeyValuePair[K, V]) bool {
	return equal(p.key, other.key) && equal(p.value, other.value)
}

// equal is a.Equals(b) where a nil reference only equals another nil reference,
// so Equals is never called on a nil receiver.
func equal[T system.Equatable[T]](a, b T) bool {
	if aNil, bNil := zerokit.IsNil(a), zerokit.IsNil(b); aNil || bNil {
		return aNil && bNil
	}
	return a.Equals(b)
}

func (p KeyValuePair[K, V]) String() string {
	return fmt.Sprintf("[%v, %v]", p.key, p.value)
}

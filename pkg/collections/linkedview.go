package collections

import "go.llib.dev/bcl/pkg/system"

// LinkedKeyCollection is a read-only live view of the keys of a LinkedList.
// It walks the chain on every enumeration and fails with ErrInvalidState once the list changed structurally.
type LinkedKeyCollection[K system.Equatable[K], V system.Equatable[V]] struct {
	chainProjection[K, V, K]
}

// LinkedValueCollection is a read-only live view of the values of a LinkedList.
// It walks the chain on every enumeration and fails with ErrInvalidState once the list changed structurally.
type LinkedValueCollection[K system.Equatable[K], V system.Equatable[V]] struct {
	chainProjection[K, V, V]
}

type chainProjection[K system.Equatable[K], V system.Equatable[V], T system.Equatable[T]] struct {
	view chainView[K, V]
	name string
	get  func(*node[K, V]) T
}

func project[K system.Equatable[K], V system.Equatable[V], T system.Equatable[T]](view chainView[K, V], name string, get func(*node[K, V]) T) chainProjection[K, V, T] {
	return chainProjection[K, V, T]{view: view, name: name, get: get}
}

func (p chainProjection[K, V, T]) Count() int { return p.view.count }

func (p chainProjection[K, V, T]) IsReadOnly() bool { return true }

func (p chainProjection[K, V, T]) Add(T) error {
	return ErrNotSupported.F("add to %s", p.name)
}

func (p chainProjection[K, V, T]) Clear() error {
	return ErrNotSupported.F("clear %s", p.name)
}

func (p chainProjection[K, V, T]) Remove(T) (bool, error) {
	return false, ErrNotSupported.F("remove from %s", p.name)
}

func (p chainProjection[K, V, T]) Contains(item T) (bool, error) {
	_, found, err := ForEach[T, T](p, func(v T) (T, bool) {
		return v, equal(v, item)
	})
	return found, err
}

func (p chainProjection[K, V, T]) CopyTo(dst []T, index int) error {
	if err := checkCopyTo(dst, index, p.view.count); err != nil {
		return err
	}
	e := p.GetEnumerator()
	defer e.Dispose()
	for e.MoveNext() {
		dst[index] = e.Current()
		index++
	}
	return e.Err()
}

func (p chainProjection[K, V, T]) GetEnumerator() Enumerator[T] {
	return &projectionEnumerator[K, V, T]{cursor: p.view.cursor(p.name), get: p.get}
}

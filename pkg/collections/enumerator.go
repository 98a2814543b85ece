package collections

import (
	"slices"

	"go.llib.dev/bcl/pkg/system"
)

// SliceEnumerator is a snapshot enumerator.
// The sequence it walks is captured when it is created, so later changes to the source are not reflected.
type SliceEnumerator[T any] struct {
	items    []T
	position int
	current  T
	disposed bool
}

// EnumeratorOf returns a SliceEnumerator over a copy of items.
func EnumeratorOf[T any](items []T) *SliceEnumerator[T] {
	return &SliceEnumerator[T]{items: slices.Clone(items), position: -1}
}

func (e *SliceEnumerator[T]) Current() T { return e.current }

func (e *SliceEnumerator[T]) MoveNext() bool {
	var zero T
	if e.disposed || len(e.items) <= e.position+1 {
		e.position = len(e.items)
		e.current = zero
		return false
	}
	e.position++
	e.current = e.items[e.position]
	return true
}

func (e *SliceEnumerator[T]) Reset() {
	var zero T
	e.position = -1
	e.current = zero
}

// Dispose releases the snapshot. A disposed enumerator yields nothing.
func (e *SliceEnumerator[T]) Dispose() {
	e.Reset()
	e.items = nil
	e.disposed = true
}

func (e *SliceEnumerator[T]) Err() error { return nil }

func (e *SliceEnumerator[T]) onItem() bool {
	return !e.disposed && 0 <= e.position && e.position < len(e.items)
}

// pairEnumerator is the snapshot DictionaryEnumerator of the hashed containers.
type pairEnumerator[K system.Equatable[K], V system.Equatable[V]] struct {
	*SliceEnumerator[KeyValuePair[K, V]]
}

func enumeratePairs[K system.Equatable[K], V system.Equatable[V]](pairs []KeyValuePair[K, V]) *pairEnumerator[K, V] {
	// pairs are collected fresh by the caller, so the snapshot can own them.
	return &pairEnumerator[K, V]{SliceEnumerator: &SliceEnumerator[KeyValuePair[K, V]]{items: pairs, position: -1}}
}

func (e *pairEnumerator[K, V]) Entry() (KeyValuePair[K, V], error) {
	if !e.onItem() {
		return KeyValuePair[K, V]{}, ErrInvalidState.F("enumeration has either not started or has already finished")
	}
	return e.current, nil
}

func (e *pairEnumerator[K, V]) Key() (K, error) {
	entry, err := e.Entry()
	return entry.key, err
}

func (e *pairEnumerator[K, V]) Value() (V, error) {
	entry, err := e.Entry()
	return entry.value, err
}

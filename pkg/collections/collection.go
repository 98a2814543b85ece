package collections

import (
	"slices"

	"go.llib.dev/bcl/pkg/system"
)

// Collection is a growable, ordered list of items.
// It keeps insertion order, allows duplicates, and compares items with their Equals method.
type Collection[T system.Equatable[T]] struct {
	items    []T
	readOnly bool
}

// NewCollection returns a mutable Collection holding items.
func NewCollection[T system.Equatable[T]](items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// ReadOnlyCollection returns a Collection holding items that rejects every mutation with ErrNotSupported.
func ReadOnlyCollection[T system.Equatable[T]](items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items), readOnly: true}
}

// AsReadOnly returns a read-only snapshot of the current items.
func (c *Collection[T]) AsReadOnly() *Collection[T] {
	return ReadOnlyCollection(c.items...)
}

func (c *Collection[T]) Count() int { return len(c.items) }

func (c *Collection[T]) IsReadOnly() bool { return c.readOnly }

func (c *Collection[T]) Add(item T) error {
	if c.readOnly {
		return ErrNotSupported.F("add to a read-only collection")
	}
	c.items = append(c.items, item)
	return nil
}

func (c *Collection[T]) Clear() error {
	if c.readOnly {
		return ErrNotSupported.F("clear a read-only collection")
	}
	clear(c.items)
	c.items = c.items[:0]
	return nil
}

func (c *Collection[T]) Contains(item T) (bool, error) {
	return 0 <= c.indexOf(item), nil
}

func (c *Collection[T]) CopyTo(dst []T, index int) error {
	if err := checkCopyTo(dst, index, len(c.items)); err != nil {
		return err
	}
	copy(dst[index:], c.items)
	return nil
}

func (c *Collection[T]) Remove(item T) (bool, error) {
	if c.readOnly {
		return false, ErrNotSupported.F("remove from a read-only collection")
	}
	i := c.indexOf(item)
	if i < 0 {
		return false, nil
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true, nil
}

// GetEnumerator returns a snapshot of the current items.
func (c *Collection[T]) GetEnumerator() Enumerator[T] {
	return EnumeratorOf(c.items)
}

func (c *Collection[T]) indexOf(item T) int {
	return slices.IndexFunc(c.items, func(v T) bool { return equal(v, item) })
}

package collections

import (
	"context"

	"go.llib.dev/bcl/pkg/logger"
	"go.llib.dev/bcl/pkg/system"
)

// chainView is a window on a LinkedList chain as it was when the view was taken.
type chainView[K system.Equatable[K], V system.Equatable[V]] struct {
	start    *node[K, V]
	count    int
	version  *version
	expected int
}

func (v chainView[K, V]) cursor(container string) *chainCursor[K, V] {
	return &chainCursor[K, V]{container: container, view: v}
}

// chainCursor walks a chainView and fails as soon as the list changed structurally since the view was taken.
type chainCursor[K system.Equatable[K], V system.Equatable[V]] struct {
	container string
	view      chainView[K, V]
	node      *node[K, V]
	started   bool
	disposed  bool
	err       error
}

func (c *chainCursor[K, V]) moveNext() bool {
	if c.disposed || c.err != nil {
		return false
	}
	if c.view.version != nil && c.view.version.counter != c.view.expected {
		c.invalidate()
		return false
	}
	switch {
	case !c.started:
		c.node = c.view.start
		c.started = true
	case c.node != nil:
		c.node = c.node.next
	}
	return c.node != nil
}

func (c *chainCursor[K, V]) invalidate() {
	actual := c.view.version.counter
	c.node = nil
	c.err = ErrInvalidState.F("%s changed from version %d to %d", c.container, c.view.expected, actual)
	if logger.Default.IsEnabled(logger.LevelDebug) {
		logger.Debug(context.Background(), "enumerator invalidated",
			logger.Field("container", c.container),
			logger.Field("expected_version", c.view.expected),
			logger.Field("actual_version", actual))
	}
}

func (c *chainCursor[K, V]) reset() {
	c.node = nil
	c.started = false
	c.err = nil
}

func (c *chainCursor[K, V]) dispose() {
	c.node = nil
	c.view = chainView[K, V]{}
	c.disposed = true
}

func (c *chainCursor[K, V]) current() (*node[K, V], error) {
	if c.node == nil {
		return nil, ErrInvalidState.F("enumeration has either not started or has already finished")
	}
	return c.node, nil
}

// LinkedListEnumerator enumerates the entries of a LinkedList in chain order.
type LinkedListEnumerator[K system.Equatable[K], V system.Equatable[V]] struct {
	cursor *chainCursor[K, V]
}

func (e *LinkedListEnumerator[K, V]) MoveNext() bool { return e.cursor.moveNext() }

func (e *LinkedListEnumerator[K, V]) Current() KeyValuePair[K, V] {
	entry, _ := e.Entry()
	return entry
}

func (e *LinkedListEnumerator[K, V]) Entry() (KeyValuePair[K, V], error) {
	n, err := e.cursor.current()
	if err != nil {
		return KeyValuePair[K, V]{}, err
	}
	return PairOf(n.key, n.value), nil
}

func (e *LinkedListEnumerator[K, V]) Key() (K, error) {
	entry, err := e.Entry()
	return entry.key, err
}

func (e *LinkedListEnumerator[K, V]) Value() (V, error) {
	entry, err := e.Entry()
	return entry.value, err
}

func (e *LinkedListEnumerator[K, V]) Reset() { e.cursor.reset() }

func (e *LinkedListEnumerator[K, V]) Dispose() { e.cursor.dispose() }

func (e *LinkedListEnumerator[K, V]) Err() error { return e.cursor.err }

// projectionEnumerator enumerates one side of the entries of a LinkedList.
type projectionEnumerator[K system.Equatable[K], V system.Equatable[V], T any] struct {
	cursor *chainCursor[K, V]
	get    func(*node[K, V]) T
}

func (e *projectionEnumerator[K, V, T]) MoveNext() bool { return e.cursor.moveNext() }

func (e *projectionEnumerator[K, V, T]) Current() T {
	n, err := e.cursor.current()
	if err != nil {
		var zero T
		return zero
	}
	return e.get(n)
}

func (e *projectionEnumerator[K, V, T]) Reset() { e.cursor.reset() }

func (e *projectionEnumerator[K, V, T]) Dispose() { e.cursor.dispose() }

func (e *projectionEnumerator[K, V, T]) Err() error { return e.cursor.err }

func nodeKey[K system.Equatable[K], V system.Equatable[V]](n *node[K, V]) K { return n.key }

func nodeValue[K system.Equatable[K], V system.Equatable[V]](n *node[K, V]) V { return n.value }

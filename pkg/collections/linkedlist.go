package collections

import (
	"go.llib.dev/bcl/pkg/system"
	"go.llib.dev/bcl/pkg/zerokit"
)

// LinkedList is an associative container that keeps its entries on a doubly linked chain in insertion order.
//
// Key lookup searches from both ends of the chain toward the middle,
// so keys near either end are found quickly, and the worst case is linear.
//
// Enumerators and the Keys and Values views walk the live chain and are fail-fast:
// after any structural change (AddItem, RemoveItem or Clear) they stop with ErrInvalidState.
type LinkedList[K system.Equatable[K], V system.Equatable[V]] struct {
	head    *node[K, V]
	tail    *node[K, V]
	count   int
	version *version
}

type node[K system.Equatable[K], V system.Equatable[V]] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// Dispose severs the node from its neighbours and releases its key and value.
func (n *node[K, V]) Dispose() {
	var (
		zeroK K
		zeroV V
	)
	n.key, n.value = zeroK, zeroV
	n.prev, n.next = nil, nil
}

// version is shared by a list and everything that walks its chain.
// It changes once per structural mutation.
type version struct {
	counter int
}

func NewLinkedList[K system.Equatable[K], V system.Equatable[V]]() *LinkedList[K, V] {
	return &LinkedList[K, V]{version: &version{}}
}

func (l *LinkedList[K, V]) ver() *version {
	if l.version == nil {
		l.version = &version{}
	}
	return l.version
}

func (l *LinkedList[K, V]) Count() int { return l.count }

func (l *LinkedList[K, V]) IsReadOnly() bool { return false }

// Keys returns a live view of the keys.
// The view fails with ErrInvalidState once the list is structurally modified.
func (l *LinkedList[K, V]) Keys() *LinkedKeyCollection[K, V] {
	return &LinkedKeyCollection[K, V]{project(l.view(), "LinkedKeyCollection", nodeKey[K, V])}
}

// Values returns a live view of the values.
// The view fails with ErrInvalidState once the list is structurally modified.
func (l *LinkedList[K, V]) Values() *LinkedValueCollection[K, V] {
	return &LinkedValueCollection[K, V]{project(l.view(), "LinkedValueCollection", nodeValue[K, V])}
}

func (l *LinkedList[K, V]) view() chainView[K, V] {
	v := l.ver()
	return chainView[K, V]{start: l.head, count: l.count, version: v, expected: v.counter}
}

func (l *LinkedList[K, V]) Add(pair KeyValuePair[K, V]) error {
	return l.AddItem(pair.key, pair.value)
}

// AddItem appends key and value at the end of the chain.
func (l *LinkedList[K, V]) AddItem(key K, value V) error {
	if zerokit.IsNil(key) {
		return ErrNullArgument.F("key is nil")
	}
	if l.find(key) != nil {
		return ErrDuplicateKey.F("key: %v", key)
	}
	l.append(&node[K, V]{key: key, value: value})
	return nil
}

func (l *LinkedList[K, V]) append(n *node[K, V]) {
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.count++
	l.ver().counter++
}

// SetItem replaces the value of an existing key in place, or appends the key when it is missing.
// Replacing a value is not a structural change, so enumerators stay valid.
func (l *LinkedList[K, V]) SetItem(key K, value V) error {
	if zerokit.IsNil(key) {
		return ErrNullArgument.F("key is nil")
	}
	if n := l.find(key); n != nil {
		n.value = value
		return nil
	}
	l.append(&node[K, V]{key: key, value: value})
	return nil
}

func (l *LinkedList[K, V]) Item(key K) (V, error) {
	if zerokit.IsNil(key) {
		var zero V
		return zero, ErrNullArgument.F("key is nil")
	}
	n := l.find(key)
	if n == nil {
		var zero V
		return zero, ErrKeyNotFound.F("key: %v", key)
	}
	return n.value, nil
}

func (l *LinkedList[K, V]) TryGetValue(key K) (V, bool) {
	if n := l.lookup(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (l *LinkedList[K, V]) ContainsKey(key K) bool {
	return l.lookup(key) != nil
}

func (l *LinkedList[K, V]) Contains(pair KeyValuePair[K, V]) (bool, error) {
	n := l.lookup(pair.key)
	return n != nil && equal(n.value, pair.value), nil
}

func (l *LinkedList[K, V]) Remove(pair KeyValuePair[K, V]) (bool, error) {
	n := l.lookup(pair.key)
	if n == nil || !equal(n.value, pair.value) {
		return false, nil
	}
	l.unlink(n)
	return true, nil
}

// RemoveItem unlinks the node of key, and reports whether it was present.
func (l *LinkedList[K, V]) RemoveItem(key K) (bool, error) {
	if zerokit.IsNil(key) {
		return false, ErrNullArgument.F("key is nil")
	}
	n := l.find(key)
	if n == nil {
		return false, nil
	}
	l.unlink(n)
	return true, nil
}

func (l *LinkedList[K, V]) unlink(n *node[K, V]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.count--
	n.Dispose()
	l.ver().counter++
}

// Clear disposes every node.
// It is a structural change even on an empty list.
func (l *LinkedList[K, V]) Clear() error {
	for n := l.head; n != nil; {
		next := n.next
		n.Dispose()
		n = next
	}
	l.head, l.tail = nil, nil
	l.count = 0
	l.ver().counter++
	return nil
}

func (l *LinkedList[K, V]) CopyTo(dst []KeyValuePair[K, V], index int) error {
	if err := checkCopyTo(dst, index, l.count); err != nil {
		return err
	}
	for n := l.head; n != nil; n = n.next {
		dst[index] = PairOf(n.key, n.value)
		index++
	}
	return nil
}

func (l *LinkedList[K, V]) GetEnumerator() Enumerator[KeyValuePair[K, V]] {
	return l.GetDictionaryEnumerator()
}

func (l *LinkedList[K, V]) GetDictionaryEnumerator() DictionaryEnumerator[K, V] {
	return &LinkedListEnumerator[K, V]{cursor: l.view().cursor("LinkedList")}
}

func (l *LinkedList[K, V]) lookup(key K) *node[K, V] {
	if zerokit.IsNil(key) {
		return nil
	}
	return l.find(key)
}

// find walks inward from both ends at once, and stops when the two walks meet.
func (l *LinkedList[K, V]) find(key K) *node[K, V] {
	front, back := l.head, l.tail
	for front != nil && back != nil {
		if front.key.Equals(key) {
			return front
		}
		if back.key.Equals(key) {
			return back
		}
		if front == back || front.next == back {
			return nil
		}
		front, back = front.next, back.prev
	}
	return nil
}

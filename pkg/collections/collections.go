// Package collections implements the bcl containers: Collection, Dictionary, Hashtable and LinkedList,
// together with the enumerator contract they are traversed with.
//
// Enumerators are pull iterators:
//
//	e := list.GetEnumerator()
//	defer e.Dispose()
//	for e.MoveNext() {
//		fmt.Println(e.Current())
//	}
//	if err := e.Err(); err != nil {
//		return err
//	}
//
// Snapshot enumerators (Collection, Dictionary, Hashtable) never fail.
// LinkedList enumerators are fail-fast: when the list is structurally modified after the enumerator was created,
// MoveNext returns false and Err reports ErrInvalidState.
package collections

import "go.llib.dev/bcl/pkg/system"

type Enumerator[T any] interface {
	system.Disposable
	// MoveNext advances the cursor.
	// It reports false once the sequence is exhausted, the enumerator is disposed or it failed.
	MoveNext() bool
	// Current is the element under the cursor.
	// It is the zero value before the first MoveNext and after the sequence is exhausted.
	Current() T
	// Reset moves the cursor back before the first element.
	Reset()
	// Err is the error that stopped the enumeration, if any.
	Err() error
}

type Enumerable[T any] interface {
	GetEnumerator() Enumerator[T]
}

// Container is the common contract of every collection in this package.
type Container[T any] interface {
	Enumerable[T]
	Count() int
	IsReadOnly() bool
	Add(item T) error
	Clear() error
	Contains(item T) (bool, error)
	// CopyTo copies every item into dst, starting at index.
	CopyTo(dst []T, index int) error
	// Remove removes the first item equal to item, and reports whether one was found.
	Remove(item T) (bool, error)
}

// Associative is the contract of the key/value containers.
// As a Container, it holds KeyValuePair items, and pair operations match both the key and the value.
type Associative[K system.Equatable[K], V system.Equatable[V]] interface {
	Container[KeyValuePair[K, V]]
	// AddItem stores a new key.
	// It fails with ErrDuplicateKey when the key is already present.
	AddItem(key K, value V) error
	// SetItem stores the value under key, replacing the current value when the key is present.
	SetItem(key K, value V) error
	// Item returns the value stored under key, or ErrKeyNotFound.
	Item(key K) (V, error)
	TryGetValue(key K) (V, bool)
	ContainsKey(key K) bool
	RemoveItem(key K) (bool, error)
	GetDictionaryEnumerator() DictionaryEnumerator[K, V]
}

// DictionaryEnumerator enumerates the entries of an associative container.
type DictionaryEnumerator[K system.Equatable[K], V system.Equatable[V]] interface {
	Enumerator[KeyValuePair[K, V]]
	// Key, Value and Entry fail with ErrInvalidState when the cursor is not on an entry.
	Key() (K, error)
	Value() (V, error)
	Entry() (KeyValuePair[K, V], error)
}

var (
	_ Container[system.Int32]                           = &Collection[system.Int32]{}
	_ Associative[system.String, system.Int32]          = &Dictionary[system.String, system.Int32]{}
	_ Associative[system.Int32, system.String]          = &Hashtable[system.Int32, system.String]{}
	_ Associative[system.String, system.Int32]          = &LinkedList[system.String, system.Int32]{}
	_ Container[system.String]                          = &LinkedKeyCollection[system.String, system.Int32]{}
	_ Container[system.Int32]                           = &LinkedValueCollection[system.String, system.Int32]{}
	_ DictionaryEnumerator[system.String, system.Int32] = &LinkedListEnumerator[system.String, system.Int32]{}
)

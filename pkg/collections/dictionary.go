package collections

import (
	"fmt"
	"strconv"

	"go.llib.dev/bcl/pkg/system"
)

// DictionaryKey is the constraint of Dictionary keys.
// The String form is the storage slot of the key, so unequal keys must not share it.
type DictionaryKey[K any] interface {
	system.Object[K]
	fmt.Stringer
}

// Dictionary is an unordered associative container that stores pairs under the String form of their keys.
// With WithComparer, the slot is the comparer's hash code of the key instead.
//
// Its enumerators and its Keys and Values views are snapshots.
type Dictionary[K DictionaryKey[K], V system.Equatable[V]] struct {
	table table[string, K, V]
}

func NewDictionary[K DictionaryKey[K], V system.Equatable[V]](opts ...Option[K]) *Dictionary[K, V] {
	c := toConfig(opts)
	if c.Comparer == nil {
		return &Dictionary[K, V]{table: table[string, K, V]{
			project: func(key K) string { return key.String() },
			equal:   func(a, b K) bool { return a.Equals(b) },
		}}
	}
	comparer := c.Comparer
	return &Dictionary[K, V]{table: table[string, K, V]{
		project: func(key K) string { return strconv.Itoa(comparer.HashCode(key)) },
		equal:   comparer.Equals,
	}}
}

func (d *Dictionary[K, V]) tbl() *table[string, K, V] {
	if d.table.project == nil {
		d.table = NewDictionary[K, V]().table
	}
	return &d.table
}

func (d *Dictionary[K, V]) Count() int { return len(d.table.entries) }

func (d *Dictionary[K, V]) IsReadOnly() bool { return false }

// Keys returns a read-only snapshot of the keys.
func (d *Dictionary[K, V]) Keys() *Collection[K] {
	return &Collection[K]{items: d.tbl().keys(), readOnly: true}
}

// Values returns a read-only snapshot of the values.
func (d *Dictionary[K, V]) Values() *Collection[V] {
	return &Collection[V]{items: d.tbl().values(), readOnly: true}
}

func (d *Dictionary[K, V]) Add(pair KeyValuePair[K, V]) error {
	return d.AddItem(pair.key, pair.value)
}

func (d *Dictionary[K, V]) AddItem(key K, value V) error {
	return d.tbl().insert(key, value, false)
}

func (d *Dictionary[K, V]) SetItem(key K, value V) error {
	return d.tbl().insert(key, value, true)
}

func (d *Dictionary[K, V]) Item(key K) (V, error) {
	return d.tbl().item(key)
}

func (d *Dictionary[K, V]) TryGetValue(key K) (V, bool) {
	entry, ok := d.tbl().lookup(key)
	return entry.value, ok
}

func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	_, ok := d.tbl().lookup(key)
	return ok
}

func (d *Dictionary[K, V]) Contains(pair KeyValuePair[K, V]) (bool, error) {
	return d.tbl().containsPair(pair), nil
}

func (d *Dictionary[K, V]) Remove(pair KeyValuePair[K, V]) (bool, error) {
	return d.tbl().removePair(pair), nil
}

func (d *Dictionary[K, V]) RemoveItem(key K) (bool, error) {
	return d.tbl().removeKey(key)
}

func (d *Dictionary[K, V]) Clear() error {
	clear(d.table.entries)
	return nil
}

func (d *Dictionary[K, V]) CopyTo(dst []KeyValuePair[K, V], index int) error {
	return d.tbl().copyTo(dst, index)
}

// Equals reports whether oth holds the same keys with equal values.
func (d *Dictionary[K, V]) Equals(oth *Dictionary[K, V]) bool {
	if oth == nil {
		return false
	}
	return d.tbl().equals(oth.tbl())
}

func (d *Dictionary[K, V]) GetEnumerator() Enumerator[KeyValuePair[K, V]] {
	return d.GetDictionaryEnumerator()
}

func (d *Dictionary[K, V]) GetDictionaryEnumerator() DictionaryEnumerator[K, V] {
	return enumeratePairs(d.tbl().pairs())
}

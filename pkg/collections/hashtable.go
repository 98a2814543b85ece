package collections

import "go.llib.dev/bcl/pkg/system"

// Hashtable is an unordered associative container that stores pairs under the hash code of their keys.
// Unequal keys must not share a hash code; an insert that would make them share a slot fails with ErrKeyCollision.
//
// Its enumerators and its Keys and Values views are snapshots.
type Hashtable[K system.Object[K], V system.Equatable[V]] struct {
	table table[int, K, V]
}

func NewHashtable[K system.Object[K], V system.Equatable[V]](opts ...Option[K]) *Hashtable[K, V] {
	c := toConfig(opts)
	if c.Comparer == nil {
		c.Comparer = system.DefaultComparer[K]()
	}
	return &Hashtable[K, V]{table: table[int, K, V]{
		project: c.Comparer.HashCode,
		equal:   c.Comparer.Equals,
	}}
}

func (h *Hashtable[K, V]) tbl() *table[int, K, V] {
	if h.table.project == nil {
		h.table = NewHashtable[K, V]().table
	}
	return &h.table
}

func (h *Hashtable[K, V]) Count() int { return len(h.table.entries) }

func (h *Hashtable[K, V]) IsReadOnly() bool { return false }

func (h *Hashtable[K, V]) Keys() *Collection[K] {
	return &Collection[K]{items: h.tbl().keys(), readOnly: true}
}

func (h *Hashtable[K, V]) Values() *Collection[V] {
	return &Collection[V]{items: h.tbl().values(), readOnly: true}
}

func (h *Hashtable[K, V]) Add(pair KeyValuePair[K, V]) error {
	return h.AddItem(pair.key, pair.value)
}

func (h *Hashtable[K, V]) AddItem(key K, value V) error {
	return h.tbl().insert(key, value, false)
}

func (h *Hashtable[K, V]) SetItem(key K, value V) error {
	return h.tbl().insert(key, value, true)
}

func (h *Hashtable[K, V]) Item(key K) (V, error) {
	return h.tbl().item(key)
}

func (h *Hashtable[K, V]) TryGetValue(key K) (V, bool) {
	entry, ok := h.tbl().lookup(key)
	return entry.value, ok
}

func (h *Hashtable[K, V]) ContainsKey(key K) bool {
	_, ok := h.tbl().lookup(key)
	return ok
}

func (h *Hashtable[K, V]) Contains(pair KeyValuePair[K, V]) (bool, error) {
	return h.tbl().containsPair(pair), nil
}

func (h *Hashtable[K, V]) Remove(pair KeyValuePair[K, V]) (bool, error) {
	return h.tbl().removePair(pair), nil
}

func (h *Hashtable[K, V]) RemoveItem(key K) (bool, error) {
	return h.tbl().removeKey(key)
}

func (h *Hashtable[K, V]) Clear() error {
	clear(h.table.entries)
	return nil
}

func (h *Hashtable[K, V]) CopyTo(dst []KeyValuePair[K, V], index int) error {
	return h.tbl().copyTo(dst, index)
}

func (h *Hashtable[K, V]) Equals(oth *Hashtable[K, V]) bool {
	if oth == nil {
		return false
	}
	return h.tbl().equals(oth.tbl())
}

func (h *Hashtable[K, V]) GetEnumerator() Enumerator[KeyValuePair[K, V]] {
	return h.GetDictionaryEnumerator()
}

func (h *Hashtable[K, V]) GetDictionaryEnumerator() DictionaryEnumerator[K, V] {
	return enumeratePairs(h.tbl().pairs())
}

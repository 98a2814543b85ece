package collections

import (
	"go.llib.dev/bcl/pkg/system"
	"go.llib.dev/bcl/pkg/zerokit"
)

// table stores pairs under the projection of their key.
// A slot never holds more than one key, so unequal keys with the same projection are rejected on insert.
type table[P comparable, K system.Equatable[K], V system.Equatable[V]] struct {
	entries map[P]KeyValuePair[K, V]
	project func(K) P
	equal   func(a, b K) bool
}

func (t *table[P, K, V]) lookup(key K) (KeyValuePair[K, V], bool) {
	if zerokit.IsNil(key) {
		return KeyValuePair[K, V]{}, false
	}
	entry, ok := t.entries[t.project(key)]
	if !ok || !t.equal(entry.key, key) {
		return KeyValuePair[K, V]{}, false
	}
	return entry, true
}

func (t *table[P, K, V]) insert(key K, value V, overwrite bool) error {
	if zerokit.IsNil(key) {
		return ErrNullArgument.F("key is nil")
	}
	p := t.project(key)
	if entry, ok := t.entries[p]; ok {
		if !t.equal(entry.key, key) {
			return ErrKeyCollision.F("%v shares its slot with %v", key, entry.key)
		}
		if !overwrite {
			return ErrDuplicateKey.F("key: %v", key)
		}
		key = entry.key
	}
	if t.entries == nil {
		t.entries = make(map[P]KeyValuePair[K, V])
	}
	t.entries[p] = PairOf(key, value)
	return nil
}

func (t *table[P, K, V]) item(key K) (V, error) {
	if zerokit.IsNil(key) {
		var zero V
		return zero, ErrNullArgument.F("key is nil")
	}
	entry, ok := t.lookup(key)
	if !ok {
		return entry.value, ErrKeyNotFound.F("key: %v", key)
	}
	return entry.value, nil
}

func (t *table[P, K, V]) containsPair(pair KeyValuePair[K, V]) bool {
	entry, ok := t.lookup(pair.key)
	return ok && equal(entry.value, pair.value)
}

func (t *table[P, K, V]) removeKey(key K) (bool, error) {
	if zerokit.IsNil(key) {
		return false, ErrNullArgument.F("key is nil")
	}
	if _, ok := t.lookup(key); !ok {
		return false, nil
	}
	delete(t.entries, t.project(key))
	return true, nil
}

func (t *table[P, K, V]) removePair(pair KeyValuePair[K, V]) bool {
	if !t.containsPair(pair) {
		return false
	}
	delete(t.entries, t.project(pair.key))
	return true
}

func (t *table[P, K, V]) pairs() []KeyValuePair[K, V] {
	pairs := make([]KeyValuePair[K, V], 0, len(t.entries))
	for _, entry := range t.entries {
		pairs = append(pairs, entry)
	}
	return pairs
}

func (t *table[P, K, V]) keys() []K {
	keys := make([]K, 0, len(t.entries))
	for _, entry := range t.entries {
		keys = append(keys, entry.key)
	}
	return keys
}

func (t *table[P, K, V]) values() []V {
	values := make([]V, 0, len(t.entries))
	for _, entry := range t.entries {
		values = append(values, entry.value)
	}
	return values
}

func (t *table[P, K, V]) copyTo(dst []KeyValuePair[K, V], index int) error {
	if err := checkCopyTo(dst, index, len(t.entries)); err != nil {
		return err
	}
	for _, entry := range t.entries {
		dst[index] = entry
		index++
	}
	return nil
}

func (t *table[P, K, V]) equals(oth *table[P, K, V]) bool {
	if len(t.entries) != len(oth.entries) {
		return false
	}
	for p, entry := range t.entries {
		othEntry, ok := oth.entries[p]
		if !ok || !t.equal(entry.key, othEntry.key) || !equal(entry.value, othEntry.value) {
			return false
		}
	}
	return true
}

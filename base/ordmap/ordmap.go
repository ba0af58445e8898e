// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap provides an insertion-ordered map: a slice of key-value
// pairs paired with an index for O(1) key lookup. The translator's data
// model depends on several maps that are explicitly insertion-ordered with
// unique keys (the archive's namespace prefix map, its registered
// extension-to-language and macro-to-type tables) — a plain Go map loses
// the order, and re-deriving order via a parallel slice at every call site
// invites the two getting out of sync. This package is that shared
// container.
package ordmap

// KeyValue is one entry in a [Map], in insertion order.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map from K to V. The zero value is not
// ready to use; call [New] or [Make].
type Map[K comparable, V any] struct {
	// Order holds the entries in insertion order.
	Order []KeyValue[K, V]

	// Map holds the index into Order for each key.
	Map map[K]int
}

// New returns a new, empty [Map].
func New[K comparable, V any]() *Map[K, V] {
	om := &Map[K, V]{}
	om.Map = make(map[K]int)
	return om
}

// Make returns a new [Map] populated from the given key-value pairs,
// in the order given.
func Make[K comparable, V any](kvs []KeyValue[K, V]) *Map[K, V] {
	om := New[K, V]()
	for _, kv := range kvs {
		om.Add(kv.Key, kv.Value)
	}
	return om
}

// Len returns the number of entries.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}

// Add appends a new key-value pair, or overwrites the value of an
// existing key in place (preserving its original position). Returns the
// index of the entry and whether it was newly added (false means an
// existing key's value was overwritten).
func (om *Map[K, V]) Add(key K, value V) (idx int, added bool) {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
	if i, has := om.Map[key]; has {
		om.Order[i].Value = value
		return i, false
	}
	idx = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{key, value})
	om.Map[key] = idx
	return idx, true
}

// InsertAtIndex inserts a new key-value pair at the given index, shifting
// every later entry up by one and renumbering the key index.
func (om *Map[K, V]) InsertAtIndex(idx int, key K, value V) {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
	om.Order = append(om.Order, KeyValue[K, V]{})
	copy(om.Order[idx+1:], om.Order[idx:])
	om.Order[idx] = KeyValue[K, V]{key, value}
	for i := idx; i < len(om.Order); i++ {
		om.Map[om.Order[i].Key] = i
	}
}

// ValueByKeyTry returns the value for key and whether it was found.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if i, has := om.Map[key]; has {
		return om.Order[i].Value, true
	}
	var zero V
	return zero, false
}

// IndexByKeyTry returns the insertion-order index for key and whether
// it was found.
func (om *Map[K, V]) IndexByKeyTry(key K) (int, bool) {
	i, has := om.Map[key]
	return i, has
}

// KeyByIndex returns the key at the given insertion-order index.
func (om *Map[K, V]) KeyByIndex(idx int) K {
	return om.Order[idx].Key
}

// ValueByIndex returns the value at the given insertion-order index.
func (om *Map[K, V]) ValueByIndex(idx int) V {
	return om.Order[idx].Value
}

// DeleteIndex removes entries [from, to) and renumbers the remaining
// entries' index positions.
func (om *Map[K, V]) DeleteIndex(from, to int) {
	for _, kv := range om.Order[from:to] {
		delete(om.Map, kv.Key)
	}
	om.Order = append(om.Order[:from], om.Order[to:]...)
	for i := from; i < len(om.Order); i++ {
		om.Map[om.Order[i].Key] = i
	}
}

// DeleteKey removes the entry for key, if present, and reports whether
// it was found.
func (om *Map[K, V]) DeleteKey(key K) bool {
	i, has := om.Map[key]
	if !has {
		return false
	}
	om.DeleteIndex(i, i+1)
	return true
}

// Keys returns the keys in insertion order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

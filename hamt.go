// Package hamt implements a persistent (immutable, structurally-shared)
// associative map as a Hash Array Mapped Trie. Every mutating operation
// on a Map returns a new, independent Map that shares the maximum
// amount of its internal structure with its predecessor: producing a
// new version costs O(log32 N) node allocations, and the old version
// remains fully usable, and safe to read concurrently from any number
// of goroutines, forever.
//
// There is no in-place mutation, no ordering guarantee over keys, and
// no coordination required between readers: immutability is the whole
// concurrency story. See the package-level tests for the properties a
// conforming Map is expected to hold.
package hamt

import "iter"

// Pair is a single (key, value) binding, used by Of and by Builder to
// accept bulk input without forcing callers to build an intermediate
// map of their own.
type Pair[K Key, V any] struct {
	Key K
	Val V
}

// Map is an immutable handle onto one persistent HAMT. The zero value
// is not a valid Map; use Empty to obtain one.
type Map[K Key, V any] struct {
	root node[K, V]
	n    int
}

// Empty returns the canonical empty map for a given (K, V) instantiation.
func Empty[K Key, V any]() Map[K, V] {
	return Map[K, V]{root: emptyNode[K, V]{}}
}

// Of builds a Map from a literal list of pairs, left-folding Insert over
// Empty in the order given. Later pairs win on key collision.
func Of[K Key, V any](pairs ...Pair[K, V]) Map[K, V] {
	m := Empty[K, V]()
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Val)
	}
	return m
}

// From builds a Map from any iter.Seq2 of (key, value) pairs, such as a
// Go map range or another Map's All method. Later pairs win on key
// collision.
func From[K Key, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := Empty[K, V]()
	for k, v := range seq {
		m = m.Insert(k, v)
	}
	return m
}

// valuesEqual reports whether a and b are equal, used only as the
// stability optimization on Insert: skip rebuilding a leaf when both key
// and value already match. V may not be comparable (it can be a slice,
// map, or function), in which case the interface equality check below
// panics; when it does, insert degrades gracefully by treating the
// values as different and rebuilding, which is always correct, just not
// maximally sharing.
func valuesEqual[V any](a, b V) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return any(a) == any(b)
}

// IsEmpty reports whether the map holds no entries.
func (m Map[K, V]) IsEmpty() bool { return m.n == 0 }

// Size returns the number of entries in the map in O(1): it is memoized
// on construction, not recomputed by walking the tree.
func (m Map[K, V]) Size() int { return m.n }

// Get returns the value stored for key, and whether key was present.
func (m Map[K, V]) Get(key K) (V, bool) {
	return m.root.lookup(key, key.Hash32())
}

// Contains reports whether key is present in the map.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Insert returns a new Map with key bound to val, sharing every subtree
// of the receiver that the new binding doesn't touch. If key was already
// bound to an equal value, Insert may return a Map backed by the exact
// same root node as the receiver (see valuesEqual).
func (m Map[K, V]) Insert(key K, val V) Map[K, V] {
	hash := key.Hash32()
	newRoot := m.root.insert(0, key, hash, val)
	if newRoot == m.root {
		return m
	}
	return Map[K, V]{root: newRoot, n: newRoot.size()}
}

// Remove returns a new Map with key absent. If key was not present,
// Remove returns the receiver unchanged (same root, same size).
func (m Map[K, V]) Remove(key K) Map[K, V] {
	hash := key.Hash32()
	newRoot := m.root.remove(key, hash)
	if newRoot == m.root {
		return m
	}
	return Map[K, V]{root: newRoot, n: newRoot.size()}
}

// Same reports whether m and other are backed by the exact same root
// node (pointer identity, not just equal contents). Every update path
// in this package returns the receiver's own root unchanged whenever an
// operation turns out to be a no-op, so Same is a cheap, exact way to
// detect that: no hashing, no tree walk, no value comparison.
func (m Map[K, V]) Same(other Map[K, V]) bool {
	return m.root == other.root
}

// All returns an iterator over every (key, value) pair in the map, in
// array-index order (an implementation detail; no ordering over keys is
// guaranteed). Each call to All starts a fresh traversal; the
// underlying structure is untouched and can be iterated any number of
// times, including concurrently, because it never changes.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.root.pairs(yield)
	}
}

// Keys returns an iterator over the map's keys, in the same order All
// would yield them.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.root.pairs(func(k K, _ V) bool { return yield(k) })
	}
}

// Values returns an iterator over the map's values, in the same order
// All would yield them.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.root.pairs(func(_ K, v V) bool { return yield(v) })
	}
}

// Entries returns the map's (key, value) pairs as a plain slice, for
// callers (or host-language destructuring patterns) that want the
// sequence materialized rather than iterated lazily.
func (m Map[K, V]) Entries() []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.n)
	for k, v := range m.All() {
		out = append(out, Pair[K, V]{Key: k, Val: v})
	}
	return out
}

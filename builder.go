package hamt

// Builder accumulates inserts into a persistent Map without forcing the
// caller to thread a fresh Map value through every call by hand. Builder
// is not a mutable data structure itself: every Put still produces a
// brand-new persistent Map internally and Builder simply holds on to the
// latest one.
type Builder[K Key, V any] struct {
	m Map[K, V]
}

// NewBuilder starts a Builder from an empty map.
func NewBuilder[K Key, V any]() *Builder[K, V] {
	return &Builder[K, V]{m: Empty[K, V]()}
}

// Put inserts key -> val into the map under construction and returns
// the builder for chaining.
func (b *Builder[K, V]) Put(key K, val V) *Builder[K, V] {
	b.m = b.m.Insert(key, val)
	return b
}

// PutAll inserts every pair from pairs, in order.
func (b *Builder[K, V]) PutAll(pairs ...Pair[K, V]) *Builder[K, V] {
	for _, p := range pairs {
		b.Put(p.Key, p.Val)
	}
	return b
}

// Build returns the persistent Map accumulated so far. The Builder
// remains usable afterward; further Put calls build on top of the
// returned snapshot exactly like any other persistent Map derivation.
func (b *Builder[K, V]) Build() Map[K, V] {
	return b.m
}

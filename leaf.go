package hamt

// leafNode holds a single (key, value) pair together with the full
// 32-bit hash of key. Invariant: hash == key.Hash32() always.
type leafNode[K Key, V any] struct {
	hash uint32
	key  K
	val  V
}

func (l *leafNode[K, V]) storedHash() uint32 { return l.hash }

func (*leafNode[K, V]) size() int { return 1 }

func (l *leafNode[K, V]) lookup(key K, _ uint32) (V, bool) {
	if l.key == key {
		return l.val, true
	}
	var zero V
	return zero, false
}

func (l *leafNode[K, V]) insert(shift uint, key K, hash uint32, val V) node[K, V] {
	if l.key == key {
		if valuesEqual(l.val, val) {
			return l // stable: nothing actually changed
		}
		return &leafNode[K, V]{hash: l.hash, key: key, val: val}
	}
	if l.hash == hash {
		// Same hash, different key: promote to a collision bucket.
		return &collisionNode[K, V]{
			hash: hash,
			entries: []entry[K, V]{
				{key: l.key, val: l.val},
				{key: key, val: val},
			},
		}
	}
	// Different hash entirely: the two leaves need a bitmapped node to
	// discriminate between them, possibly several levels deep.
	return promote[K, V](shift, l, &leafNode[K, V]{hash: hash, key: key, val: val})
}

func (l *leafNode[K, V]) remove(key K, _ uint32) node[K, V] {
	if l.key == key {
		return emptyNode[K, V]{}
	}
	return l
}

func (l *leafNode[K, V]) pairs(yield func(K, V) bool) bool {
	return yield(l.key, l.val)
}

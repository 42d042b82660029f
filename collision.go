package hamt

// entry is a stored (key, value) pair, the unit collisionNode buckets
// hold and leafNode carries a single instance of inline.
type entry[K Key, V any] struct {
	key K
	val V
}

// collisionNode buckets two or more entries whose keys differ but whose
// full 32-bit hashes are identical. Bucket order is unspecified and not
// required to be stable across versions, only within one node instance.
type collisionNode[K Key, V any] struct {
	hash    uint32
	entries []entry[K, V]
}

func (c *collisionNode[K, V]) storedHash() uint32 { return c.hash }

func (c *collisionNode[K, V]) size() int { return len(c.entries) }

func (c *collisionNode[K, V]) lookup(key K, _ uint32) (V, bool) {
	for _, e := range c.entries {
		if e.key == key {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

func (c *collisionNode[K, V]) insert(shift uint, key K, hash uint32, val V) node[K, V] {
	if hash == c.hash {
		entries := make([]entry[K, V], len(c.entries), len(c.entries)+1)
		copy(entries, c.entries)
		for i, e := range entries {
			if e.key == key {
				if valuesEqual(e.val, val) {
					return c
				}
				entries[i].val = val
				return &collisionNode[K, V]{hash: c.hash, entries: entries}
			}
		}
		entries = append(entries, entry[K, V]{key: key, val: val})
		return &collisionNode[K, V]{hash: c.hash, entries: entries}
	}
	// Different hash: this collision bucket and the new leaf need a
	// bitmapped node above them to tell their hashes apart.
	return promote[K, V](shift, c, &leafNode[K, V]{hash: hash, key: key, val: val})
}

func (c *collisionNode[K, V]) remove(key K, _ uint32) node[K, V] {
	idx := -1
	for i, e := range c.entries {
		if e.key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}
	if len(c.entries) == 2 {
		// Demote back to a single leaf: the surviving entry.
		survivor := c.entries[1-idx]
		return &leafNode[K, V]{hash: c.hash, key: survivor.key, val: survivor.val}
	}
	entries := make([]entry[K, V], 0, len(c.entries)-1)
	entries = append(entries, c.entries[:idx]...)
	entries = append(entries, c.entries[idx+1:]...)
	return &collisionNode[K, V]{hash: c.hash, entries: entries}
}

func (c *collisionNode[K, V]) pairs(yield func(K, V) bool) bool {
	for _, e := range c.entries {
		if !yield(e.key, e.val) {
			return false
		}
	}
	return true
}

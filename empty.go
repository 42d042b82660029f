package hamt

// emptyNode is the canonical empty tree. It carries no state, so a
// zero-value emptyNode[K, V]{} is the only instance any caller ever
// needs; there is nothing to path-copy and nothing to share.
type emptyNode[K Key, V any] struct{}

func (emptyNode[K, V]) size() int { return 0 }

func (emptyNode[K, V]) lookup(_ K, _ uint32) (v V, ok bool) {
	return v, false
}

// insert on Empty always produces a Leaf; the level shift is irrelevant
// because a freshly created Leaf carries no positional information of
// its own, only its full stored hash.
func (emptyNode[K, V]) insert(_ uint, key K, hash uint32, val V) node[K, V] {
	return &leafNode[K, V]{hash: hash, key: key, val: val}
}

// remove on Empty absorbs the request unchanged: there is nothing to
// remove, so Map.Remove on an absent key is a no-op all the way down.
func (e emptyNode[K, V]) remove(_ K, _ uint32) node[K, V] {
	return e
}

func (emptyNode[K, V]) pairs(_ func(K, V) bool) bool { return true }

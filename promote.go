package hamt

// promote builds a fresh bitmapNode at level shift that discriminates
// between an existing single node x (a leafNode or collisionNode with
// stored hash x.storedHash()) and a brand new leaf for (key, hash, val),
// whose hash is known to differ from x's. The two single nodes either
// land in different slots at this level, or they share a slot and the
// recursion has to go one level deeper.
func promote[K Key, V any](shift uint, x single[K, V], leaf *leafNode[K, V]) node[K, V] {
	ix := indexAt(x.storedHash(), shift)
	iy := indexAt(leaf.hash, shift)
	debugf("promote: shift=%d hashA=%#08x hashB=%#08x ix=%d iy=%d", shift, x.storedHash(), leaf.hash, ix, iy)

	if ix != iy {
		children := make([]node[K, V], 2)
		var bitmap uint32
		if ix < iy {
			children[0], children[1] = x, leaf
		} else {
			children[0], children[1] = leaf, x
		}
		bitmap = 1<<ix | 1<<iy
		return &bitmapNode[K, V]{
			shift:    shift,
			bitmap:   bitmap,
			children: children,
			count:    x.size() + leaf.size(),
		}
	}

	// The two hashes agree at this level shift; recurse one level
	// deeper into the single slot they both land in. Bounded by 7
	// levels: by then either the full hashes are equal (handled earlier,
	// at the leaf, by promoting straight to a collisionNode) or they've
	// diverged in some lower 5-bit slice.
	child := x.insert(shift+bitsPerLevel, leaf.key, leaf.hash, leaf.val)
	return &bitmapNode[K, V]{
		shift:    shift,
		bitmap:   1 << ix,
		children: []node[K, V]{child},
		count:    child.size(),
	}
}

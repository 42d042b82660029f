package hamt

import "math/bits"

// bitsPerLevel is fixed by the 32-entry table: 2^5 == 32.
const bitsPerLevel uint = 5

// levelMask pulls one 5-bit slice out of a hash.
const levelMask uint32 = 1<<bitsPerLevel - 1

// maxShift is the deepest level shift a 32-bit hash admits. 32/5 == 6
// remainder 2, so the seventh level (shift 30) only has two live bits
// left to discriminate on; every table at that depth can have at most
// four occupied slots instead of thirty-two.
const maxShift uint = 30

// indexAt extracts the bitsPerLevel-wide slot index out of hash at the
// given level shift. hash is unsigned, so >> is already the logical
// (unsigned) shift the HAMT dispatch requires; there is no sign bit to
// smuggle across levels the way there would be with a signed shift.
func indexAt(hash uint32, shift uint) uint32 {
	return (hash >> shift) & levelMask
}

// popcount32 counts the set bits of bitmap. Applied to a bitmap masked
// down to the bits below slot i (see bitmapNode.compactIndex), it gives
// how many earlier slots are occupied, which is slot i's physical index
// into the compacted children slice.
func popcount32(bitmap uint32) int {
	return bits.OnesCount32(bitmap)
}

// node is the closed, five-variant sum type every trie position holds.
// Implementations: emptyNode, *leafNode, *collisionNode, *bitmapNode,
// *fullNode. All of them are immutable once constructed; every mutating
// operation returns a new node and leaves its receiver untouched so
// that untouched subtrees can be shared between logical versions.
type node[K Key, V any] interface {
	// size is the number of (key, value) entries in the subtree rooted
	// here. Computed eagerly at construction (see design notes: this
	// avoids any first-access memoization/synchronization question on a
	// value that is shared, read-only, across goroutines).
	size() int

	// lookup returns the value stored for key if present. hash is the
	// full 32-bit hash of key, recomputed once by the caller and
	// threaded down unchanged.
	lookup(key K, hash uint32) (V, bool)

	// insert returns a node reflecting key -> val, creating whatever
	// new nodes path-copying requires. shift is the level shift this
	// node was reached at. When nothing changes, insert returns the
	// receiver unchanged so callers can use pointer identity to detect
	// "no-op" inserts and avoid further path-copying above them.
	insert(shift uint, key K, hash uint32, val V) node[K, V]

	// remove returns a node with key (and its hash, recomputed once by
	// the caller) absent. Returns the receiver unchanged if key was not
	// present. May return emptyNode[K, V]{} to signal total removal, in
	// which case the caller is responsible for any contraction logic
	// that depends on sibling occupancy (see bitmapNode.remove).
	remove(key K, hash uint32) node[K, V]

	// pairs visits every (key, value) pair in the subtree exactly once,
	// in array-index order, calling yield for each. Iteration stops
	// early (and pairs returns false) the moment yield returns false,
	// matching the stop-protocol Go 1.23 range-over-func iterators use.
	pairs(yield func(K, V) bool) bool
}

// single is the common supertype of leafNode and collisionNode: the two
// variants that carry a stored hash and must be redistributed into a
// freshly built bitmapNode when a sibling with a different hash arrives
// at their slot (see promote).
type single[K Key, V any] interface {
	node[K, V]
	storedHash() uint32
}

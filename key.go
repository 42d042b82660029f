package hamt

import (
	"encoding/binary"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Key is the contract every map key type must satisfy. Keys must be
// comparable (so leaves and collision buckets can tell two keys apart
// with plain ==) and must expose a stable 32-bit hash: Hash32() must
// return the same value every time it is called on equal keys, for the
// lifetime of any Map that holds them. The map never reseeds or mixes
// the hash it is given; collision resistance is the key type's job, not
// the trie's (spec: hash-function selection is an external concern).
type Key interface {
	comparable
	Hash32() uint32
}

// StringKey is a ready-made Key for plain strings, hashing with FNV-1a.
type StringKey string

// Hash32 computes the FNV-1a hash of the string.
func (k StringKey) Hash32() uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	h := uint32(offset32)
	for i := 0; i < len(k); i++ {
		h ^= uint32(k[i])
		h *= prime32
	}
	return h
}

// IntKey is a ready-made Key for machine integers. Its hash is a
// Fibonacci-hashing multiplicative mix (a single multiply-and-shift),
// which spreads small sequential integers across the full 32-bit range
// so that inserting keys 1, 2, 3, ... doesn't pile them all into the
// low bits of the trie's first level.
type IntKey int64

// Hash32 mixes the integer with the 32-bit Fibonacci hashing constant.
func (k IntKey) Hash32() uint32 {
	const fib32 = 2654435761
	u := uint64(k)
	mixed := uint32(u) ^ uint32(u>>32)
	return mixed * fib32
}

// BytesKey is a ready-made Key for arbitrary byte payloads, hashing with
// SHA-3/Keccak (via golang.org/x/crypto/sha3, the hash package the
// broader retrieval pack's trie implementations already import) and
// folding the 256-bit digest down to the 32 bits the trie consumes.
// BytesKey stores its digest rather than the raw bytes so two BytesKey
// values compare equal (and are therefore usable with Go's built-in ==,
// as Key requires) exactly when their underlying bytes hashed equal.
type BytesKey [32]byte

// NewBytesKey hashes b with SHA3-256 and returns the resulting key.
func NewBytesKey(b []byte) BytesKey {
	return BytesKey(sha3.Sum256(b))
}

// Hash32 folds the 256-bit digest to 32 bits by XOR-ing its four
// constituent 64-bit words down to one 32-bit word.
func (k BytesKey) Hash32() uint32 {
	var acc uint64
	for i := 0; i < len(k); i += 8 {
		acc ^= binary.LittleEndian.Uint64(k[i : i+8])
	}
	return uint32(acc) ^ uint32(acc>>32)
}

// UUIDKey is a ready-made Key wrapping a github.com/google/uuid.UUID,
// useful for maps keyed by generated identifiers (session IDs, request
// IDs, and the like) rather than application-meaningful values.
type UUIDKey uuid.UUID

// Hash32 folds the 128-bit UUID down to 32 bits the same way BytesKey
// folds its wider digest.
func (k UUIDKey) Hash32() uint32 {
	var acc uint64
	acc ^= binary.LittleEndian.Uint64(k[0:8])
	acc ^= binary.LittleEndian.Uint64(k[8:16])
	return uint32(acc) ^ uint32(acc>>32)
}

// NewUUIDKey generates a random (version 4) UUID key.
func NewUUIDKey() (UUIDKey, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return UUIDKey{}, err
	}
	return UUIDKey(id), nil
}

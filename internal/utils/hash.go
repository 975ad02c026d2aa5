package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// proofKey. The devnet uses it to issue and check input and decryption proofs.
//
// Example usage:
//
//	utils.InitHasherPool("devnet-proof-key")
func InitHasherPool(proofKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(proofKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest over parts, written in order, using a
// hasher pulled from the global pool. Every part is length-prefixed so that
// ("ab","c") and ("a","bc") produce different digests.
//
// Example usage:
//
//	proof := utils.Hash([]byte(handle), []byte(contract), []byte(user))
func Hash(parts ...[]byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	var prefix [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(prefix[:], uint64(len(p)))
		h.Write(prefix[:])
		h.Write(p)
	}
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// VerifyHash reports whether mac is the pool digest of parts. The comparison
// runs in constant time.
func VerifyHash(mac []byte, parts ...[]byte) bool {
	return hmac.Equal(mac, Hash(parts...))
}

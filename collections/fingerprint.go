package collections

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a BLAKE2b-256 digest of a collection's contents in
// insertion order. Two collections with equal renderings of equal elements
// in the same order share a fingerprint. Views do not use it; see
// [AscendingView.Stale] for mutation tracking.
type Fingerprint [blake2b.Size256]byte

// String returns the fingerprint as lowercase hex.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Fingerprint digests the "%v" rendering of every element, each prefixed
// with its length so that ["ab", "c"] and ["a", "bc"] differ.
func (c *Collection[T]) Fingerprint() Fingerprint {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes is rejected.
		panic(err)
	}
	var (
		prefix [binary.MaxVarintLen64]byte
		buf    []byte
	)
	for _, item := range c.items {
		buf = fmt.Appendf(buf[:0], "%v", item)
		n := binary.PutUvarint(prefix[:], uint64(len(buf)))
		h.Write(prefix[:n])
		h.Write(buf)
	}
	var f Fingerprint
	h.Sum(f[:0])
	return f
}

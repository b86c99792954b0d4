package veb

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/minio/blake2b-simd"
)

func appendLength(buf []byte, n uint64) []byte {
	var tmpbuf [binary.MaxVarintLen64]byte
	len := binary.PutUvarint(tmpbuf[:], n)
	return append(buf, tmpbuf[:len]...)
}

// encode serializes the set canonically: universe bits, size, then the
// gaps between consecutive elements in ascending order.
func (tr *Tree) encode() []byte {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+tr.size)
	buf = append(buf, tr.root.t)
	buf = appendLength(buf, tr.size)
	var last uint64
	tr.root.iter(0, func(x uint64) error {
		buf = appendLength(buf, x-last)
		last = x
		return nil
	})
	return buf
}

// Digest returns a BLAKE2b-256 hash of the set's contents and universe.
// Trees holding the same elements over the same universe have the same
// digest no matter what order the elements were inserted in.
func (tr *Tree) Digest() [32]byte {
	return blake2b.Sum256(tr.encode())
}

// DigestString returns the digest encoded as unpadded URL-safe base64.
func (tr *Tree) DigestString() string {
	hash := tr.Digest()
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

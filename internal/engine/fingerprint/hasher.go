// Package fingerprint normalizes filesystem snapshots into comparable fingerprints and folds
// them into cache keys.
package fingerprint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/recomp/internal/core/domain"
)

// Hasher accumulates cache-key material into a single xxhash digest.
type Hasher struct {
	digest *xxhash.Digest
	buf    [binary.MaxVarintLen64]byte
}

// NewHasher creates an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{digest: xxhash.New()}
}

// PutHash appends the bytes of a hash.
func (h *Hasher) PutHash(hash domain.HashCode) {
	_, _ = h.digest.Write(hash.Bytes())
}

// PutString appends a length-prefixed string.
func (h *Hasher) PutString(s string) {
	h.PutInt(len(s))
	_, _ = h.digest.WriteString(s)
}

// PutInt appends a variable-length integer.
func (h *Hasher) PutInt(i int) {
	n := binary.PutVarint(h.buf[:], int64(i))
	_, _ = h.digest.Write(h.buf[:n])
}

// Hash returns the hash of everything appended so far.
func (h *Hasher) Hash() domain.HashCode {
	return domain.HashCode(h.digest.Sum64())
}

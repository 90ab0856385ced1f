package domain

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// HashCode is a 64-bit content digest.
type HashCode uint64

var (
	// DirectorySignature is the content hash reported for every directory.
	DirectorySignature = HashString("DIR")

	// MissingSignature is the content hash reported for every missing file.
	MissingSignature = HashString("MISSING")
)

// HashBytes returns the HashCode of the given bytes.
func HashBytes(b []byte) HashCode {
	return HashCode(xxhash.Sum64(b))
}

// HashString returns the HashCode of the given string.
func HashString(s string) HashCode {
	return HashCode(xxhash.Sum64String(s))
}

// Bytes returns the big-endian encoding of the hash.
func (h HashCode) Bytes() []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(h))
	return buf[:]
}

// Compare orders hashes by their unsigned value, which matches byte-wise order of Bytes.
func (h HashCode) Compare(other HashCode) int {
	return cmp.Compare(h, other)
}

// String returns the hash as 16 lowercase hex digits.
func (h HashCode) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// MarshalText implements encoding.TextMarshaler.
func (h HashCode) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HashCode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 16, 64)
	if err != nil {
		return err
	}
	*h = HashCode(v)
	return nil
}

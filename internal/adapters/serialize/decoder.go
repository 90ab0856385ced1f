package serialize

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"go.trai.ch/recomp/internal/core/domain"
)

// Decoder reads primitive values written by an Encoder. A stream that ends in the
// middle of a value yields io.ErrUnexpectedEOF.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadByte reads a single byte.
func (d *Decoder) ReadByte() (byte, error) {
	b, err := d.r.ReadByte()
	return b, truncated(err)
}

// ReadSmallInt reads an unsigned varint that must fit a non-negative int.
func (d *Decoder) ReadSmallInt() (int, error) {
	v, err := binary.ReadUvarint(d.r)
	if err != nil {
		return 0, truncated(err)
	}
	if v > math.MaxInt32 {
		return 0, domain.ErrVarintOverflow
	}
	return int(v), nil
}

// ReadVarint reads a zig-zag varint.
func (d *Decoder) ReadVarint() (int64, error) {
	v, err := binary.ReadVarint(d.r)
	return v, truncated(err)
}

// ReadString reads a length-prefixed string.
func (d *Decoder) ReadString() (string, error) {
	n, err := d.ReadSmallInt()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, d.r, int64(n)); err != nil {
		return "", truncated(err)
	}
	return buf.String(), nil
}

// ReadNullableString reads a string written by WriteNullableString. ok is false for null.
func (d *Decoder) ReadNullableString() (s string, ok bool, err error) {
	marker, err := d.ReadByte()
	if err != nil {
		return "", false, err
	}
	switch marker {
	case 0:
		return "", false, nil
	case 1:
		s, err = d.ReadString()
		return s, err == nil, err
	default:
		return "", false, domain.ErrInvalidNullMarker
	}
}

// AtEOF reports whether the stream has been fully consumed.
func (d *Decoder) AtEOF() bool {
	_, err := d.r.Peek(1)
	return errors.Is(err, io.EOF)
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

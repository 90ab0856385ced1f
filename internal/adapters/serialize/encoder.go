// Package serialize provides the primitive binary encoding used for persisted state:
// LEB128 varints, length-prefixed strings and nullable strings.
package serialize

import (
	"bufio"
	"encoding/binary"
	"io"

	"go.trai.ch/recomp/internal/core/domain"
)

// Encoder writes primitive values to an underlying writer. The first write error is
// kept and returned by every later call, including Flush.
type Encoder struct {
	w       *bufio.Writer
	scratch [binary.MaxVarintLen64]byte
	err     error
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// WriteByte writes a single byte.
func (e *Encoder) WriteByte(b byte) error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.WriteByte(b)
	return e.err
}

// WriteSmallInt writes a non-negative int as an unsigned varint.
func (e *Encoder) WriteSmallInt(v int) error {
	if v < 0 {
		return e.fail(domain.ErrNegativeLength)
	}
	return e.write(binary.PutUvarint(e.scratch[:], uint64(v)))
}

// WriteVarint writes a signed integer as a zig-zag varint.
func (e *Encoder) WriteVarint(v int64) error {
	return e.write(binary.PutVarint(e.scratch[:], v))
}

// WriteString writes the byte length of s followed by its bytes.
func (e *Encoder) WriteString(s string) error {
	if err := e.WriteSmallInt(len(s)); err != nil {
		return err
	}
	if e.err != nil {
		return e.err
	}
	_, e.err = e.w.WriteString(s)
	return e.err
}

// WriteNullableString writes 0 when ok is false, otherwise 1 followed by s.
func (e *Encoder) WriteNullableString(s string, ok bool) error {
	if !ok {
		return e.WriteByte(0)
	}
	if err := e.WriteByte(1); err != nil {
		return err
	}
	return e.WriteString(s)
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Flush()
	return e.err
}

func (e *Encoder) write(n int) error {
	if e.err != nil {
		return e.err
	}
	_, e.err = e.w.Write(e.scratch[:n])
	return e.err
}

func (e *Encoder) fail(err error) error {
	if e.err == nil {
		e.err = err
	}
	return e.err
}

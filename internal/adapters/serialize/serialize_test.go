package serialize_test

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recomp/internal/adapters/serialize"
	"go.trai.ch/recomp/internal/core/domain"
)

func encode(t *testing.T, fn func(e *serialize.Encoder)) []byte {
	t.Helper()
	var buf bytes.Buffer
	e := serialize.NewEncoder(&buf)
	fn(e)
	require.NoError(t, e.Flush())
	return buf.Bytes()
}

func TestEncoder_Layout(t *testing.T) {
	data := encode(t, func(e *serialize.Encoder) {
		_ = e.WriteSmallInt(0)
		_ = e.WriteSmallInt(300)
		_ = e.WriteString("ab")
		_ = e.WriteNullableString("", false)
		_ = e.WriteNullableString("c", true)
		_ = e.WriteVarint(-1)
		_ = e.WriteByte(7)
	})

	assert.Equal(t, []byte{
		0x00,
		0xac, 0x02,
		0x02, 'a', 'b',
		0x00,
		0x01, 0x01, 'c',
		0x01,
		0x07,
	}, data)
}

func TestDecoder_RoundTrip(t *testing.T) {
	data := encode(t, func(e *serialize.Encoder) {
		_ = e.WriteSmallInt(42)
		_ = e.WriteString("com.example.Main")
		_ = e.WriteNullableString("cause", true)
		_ = e.WriteNullableString("", false)
		_ = e.WriteVarint(math.MinInt32)
	})

	d := serialize.NewDecoder(bytes.NewReader(data))

	n, err := d.ReadSmallInt()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	s, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "com.example.Main", s)

	s, ok, err := d.ReadNullableString()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cause", s)

	_, ok, err = d.ReadNullableString()
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := d.ReadVarint()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt32), v)

	assert.True(t, d.AtEOF())
}

func TestDecoder_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(d *serialize.Decoder) error
	}{
		{"empty small int", nil, func(d *serialize.Decoder) error { _, err := d.ReadSmallInt(); return err }},
		{"partial varint", []byte{0x80}, func(d *serialize.Decoder) error { _, err := d.ReadSmallInt(); return err }},
		{"short string", []byte{0x05, 'a', 'b'}, func(d *serialize.Decoder) error { _, err := d.ReadString(); return err }},
		{"missing byte", nil, func(d *serialize.Decoder) error { _, err := d.ReadByte(); return err }},
		{"nullable without body", []byte{0x01}, func(d *serialize.Decoder) error { _, _, err := d.ReadNullableString(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(serialize.NewDecoder(bytes.NewReader(tt.data)))
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

func TestDecoder_InvalidValues(t *testing.T) {
	_, err := serialize.NewDecoder(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})).ReadSmallInt()
	assert.ErrorIs(t, err, domain.ErrVarintOverflow)

	_, _, err = serialize.NewDecoder(bytes.NewReader([]byte{0x02})).ReadNullableString()
	assert.ErrorIs(t, err, domain.ErrInvalidNullMarker)
}

func TestEncoder_NegativeLengthIsSticky(t *testing.T) {
	var buf bytes.Buffer
	e := serialize.NewEncoder(&buf)

	assert.ErrorIs(t, e.WriteSmallInt(-1), domain.ErrNegativeLength)
	assert.ErrorIs(t, e.WriteString("x"), domain.ErrNegativeLength)
	assert.ErrorIs(t, e.Flush(), domain.ErrNegativeLength)
	assert.Zero(t, buf.Len())
}

func TestRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("strings and varints survive a round trip", prop.ForAll(
		func(s string, v int64, n uint16) bool {
			var buf bytes.Buffer
			e := serialize.NewEncoder(&buf)
			_ = e.WriteString(s)
			_ = e.WriteVarint(v)
			_ = e.WriteSmallInt(int(n))
			if e.Flush() != nil {
				return false
			}

			d := serialize.NewDecoder(&buf)
			gotS, err1 := d.ReadString()
			gotV, err2 := d.ReadVarint()
			gotN, err3 := d.ReadSmallInt()
			return err1 == nil && err2 == nil && err3 == nil &&
				gotS == s && gotV == v && gotN == int(n) && d.AtEOF()
		},
		gen.AnyString(),
		gen.Int64(),
		gen.UInt16(),
	))

	properties.TestingRun(t)
}

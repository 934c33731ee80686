package encoding

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/internal/pool"
)

// point is a minimal Borsh value used to exercise the serializer.
type point struct {
	Name  string
	X, Y  uint32
	Flag  bool
	Total uint64
}

func (p point) MarshalBorsh(w *BorshWriter) error {
	if err := w.WriteString(p.Name); err != nil {
		return err
	}
	w.WriteU32(p.X)
	w.WriteU32(p.Y)
	w.WriteBool(p.Flag)
	w.WriteU64(p.Total)

	return nil
}

func (p *point) UnmarshalBorsh(r *BorshReader) error {
	var err error
	if p.Name, err = r.ReadString(); err != nil {
		return err
	}
	if p.X, err = r.ReadU32(); err != nil {
		return err
	}
	if p.Y, err = r.ReadU32(); err != nil {
		return err
	}
	if p.Flag, err = r.ReadBool(); err != nil {
		return err
	}
	p.Total, err = r.ReadU64()

	return err
}

func TestBorshWriter_Layout(t *testing.T) {
	buf := pool.NewByteBuffer(0)
	w := NewBorshWriter(buf)

	w.WriteU8(0xAB)
	w.WriteU32(0x01020304)
	w.WriteU64(1)
	w.WriteU128(0x1111111111111111, 0x2222222222222222)
	require.NoError(t, w.WriteString("hi"))
	require.NoError(t, w.WriteBytes([]byte{0xFF}))

	expected := []byte{
		0xAB,
		0x04, 0x03, 0x02, 0x01,
		0x01, 0, 0, 0, 0, 0, 0, 0,
		0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x22, // low word first
		0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
		0x02, 0, 0, 0, 'h', 'i',
		0x01, 0, 0, 0, 0xFF,
	}
	require.Equal(t, expected, w.Bytes())
	require.Equal(t, len(expected), w.Len())
}

func TestBorshReader_RoundTrip(t *testing.T) {
	buf := pool.NewByteBuffer(0)
	w := NewBorshWriter(buf)
	w.WriteU8(7)
	w.WriteBool(true)
	w.WriteU32(math.MaxUint32)
	w.WriteU64(math.MaxUint64)
	w.WriteU128(math.MaxUint64, 42)
	require.NoError(t, w.WriteString("héllo"))
	require.NoError(t, w.WriteBytes(nil))

	r := NewBorshReader(w.Bytes())

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(7), u8)

	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)

	hi, lo, err := r.ReadU128()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), hi)
	require.Equal(t, uint64(42), lo)

	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	raw, err := r.ReadBytes()
	require.NoError(t, err)
	require.Empty(t, raw)

	require.Equal(t, 0, r.Remaining())
}

func TestBorshReader_ShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *BorshReader) error
	}{
		{"u8", nil, func(r *BorshReader) error { _, err := r.ReadU8(); return err }},
		{"u32", []byte{1, 2, 3}, func(r *BorshReader) error { _, err := r.ReadU32(); return err }},
		{"u64", []byte{1, 2, 3, 4, 5, 6, 7}, func(r *BorshReader) error { _, err := r.ReadU64(); return err }},
		{"u128", make([]byte, 15), func(r *BorshReader) error { _, _, err := r.ReadU128(); return err }},
		{"string length", []byte{1, 0}, func(r *BorshReader) error { _, err := r.ReadString(); return err }},
		{"string body", []byte{5, 0, 0, 0, 'a', 'b'}, func(r *BorshReader) error { _, err := r.ReadString(); return err }},
		{"max string length", []byte{0xFF, 0xFF, 0xFF, 0xFF, 'a'}, func(r *BorshReader) error { _, err := r.ReadString(); return err }},
		{"max bytes length", []byte{0xFF, 0xFF, 0xFF, 0x80, 'a', 'b'}, func(r *BorshReader) error { _, err := r.ReadBytes(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBorshReader(tt.data)
			err := tt.read(r)
			require.ErrorIs(t, err, ErrShortBuffer)
			require.Equal(t, len(tt.data), r.Remaining(), "failed reads must not advance")
		})
	}
}

func TestBorshReader_InvalidValues(t *testing.T) {
	_, err := NewBorshReader([]byte{2}).ReadBool()
	require.Error(t, err)

	_, err = NewBorshReader([]byte{2, 0, 0, 0, 0xC3, 0x28}).ReadString()
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestBorshSerializer_RoundTrip(t *testing.T) {
	s := NewBorshSerializer()
	require.Equal(t, format.SerializationBorsh, s.Type())

	in := point{Name: "origin", X: 3, Y: 4, Flag: true, Total: math.MaxUint64}
	data, err := s.Marshal(in)
	require.NoError(t, err)
	require.Len(t, data, 4+6+4+4+1+8)

	var out point
	require.NoError(t, s.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestBorshSerializer_Errors(t *testing.T) {
	s := NewBorshSerializer()

	_, err := s.Marshal(struct{ A int }{1})
	require.ErrorIs(t, err, ErrNotBorshMarshaler)

	err = s.Unmarshal([]byte{}, &struct{ A int }{})
	require.ErrorIs(t, err, ErrNotBorshMarshaler)

	data, err := s.Marshal(point{Name: "p"})
	require.NoError(t, err)

	var out point
	err = s.Unmarshal(append(data, 0x00), &out)
	require.ErrorIs(t, err, ErrTrailingBytes)

	err = s.Unmarshal(data[:len(data)-1], &out)
	require.True(t, errors.Is(err, ErrShortBuffer))
}

func TestBorshSerializer_FailedDecodeKeepsTarget(t *testing.T) {
	s := NewBorshSerializer()
	data, err := s.Marshal(point{Name: "decoded", X: 1, Y: 2, Flag: true, Total: 3})
	require.NoError(t, err)

	existing := point{Name: "existing", X: 9, Y: 9, Total: 9}
	out := existing

	require.ErrorIs(t, s.Unmarshal(append(data, 0x00), &out), ErrTrailingBytes)
	require.Equal(t, existing, out)

	require.ErrorIs(t, s.Unmarshal(data[:len(data)-1], &out), ErrShortBuffer)
	require.Equal(t, existing, out)

	require.NoError(t, s.Unmarshal(data, &out))
	require.Equal(t, point{Name: "decoded", X: 1, Y: 2, Flag: true, Total: 3}, out)
}

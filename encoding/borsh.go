package encoding

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/internal/pool"
)

// BorshMarshaler is implemented by values that write their own Borsh layout.
type BorshMarshaler interface {
	MarshalBorsh(w *BorshWriter) error
}

// BorshUnmarshaler is implemented by values that read their own Borsh layout.
// UnmarshalBorsh must read fields in the same order MarshalBorsh wrote them.
type BorshUnmarshaler interface {
	UnmarshalBorsh(r *BorshReader) error
}

// BorshWriter appends Borsh-encoded primitives to a byte buffer.
//
// Integers are little-endian and fixed width. Strings and byte slices are
// prefixed with their length as u32.
type BorshWriter struct {
	buf *pool.ByteBuffer
}

// NewBorshWriter creates a writer that appends to buf.
func NewBorshWriter(buf *pool.ByteBuffer) *BorshWriter {
	return &BorshWriter{buf: buf}
}

// Bytes returns the bytes written so far.
// The slice is only valid until the underlying buffer is reset or reused.
func (w *BorshWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *BorshWriter) Len() int {
	return w.buf.Len()
}

// WriteU8 writes a single byte.
func (w *BorshWriter) WriteU8(v uint8) {
	w.buf.B = append(w.buf.B, v)
}

// WriteBool writes a boolean as a u8 (0 or 1).
func (w *BorshWriter) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
		return
	}
	w.WriteU8(0)
}

// WriteU32 writes a little-endian uint32.
func (w *BorshWriter) WriteU32(v uint32) {
	w.buf.B = binary.LittleEndian.AppendUint32(w.buf.B, v)
}

// WriteU64 writes a little-endian uint64.
func (w *BorshWriter) WriteU64(v uint64) {
	w.buf.B = binary.LittleEndian.AppendUint64(w.buf.B, v)
}

// WriteU128 writes a 128-bit unsigned integer given as its high and low
// 64-bit halves. The low half is written first.
func (w *BorshWriter) WriteU128(hi, lo uint64) {
	w.buf.Grow(16)
	w.WriteU64(lo)
	w.WriteU64(hi)
}

// WriteString writes a u32 byte length followed by the string bytes.
//
// Returns an error if the string is longer than math.MaxUint32 bytes.
func (w *BorshWriter) WriteString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("borsh: string length %d exceeds u32", len(s))
	}

	w.buf.Grow(4 + len(s))
	w.WriteU32(uint32(len(s))) //nolint:gosec
	w.buf.B = append(w.buf.B, s...)

	return nil
}

// WriteBytes writes a u32 length followed by the raw bytes.
func (w *BorshWriter) WriteBytes(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return fmt.Errorf("borsh: byte slice length %d exceeds u32", len(b))
	}

	w.buf.Grow(4 + len(b))
	w.WriteU32(uint32(len(b))) //nolint:gosec
	w.buf.MustWrite(b)

	return nil
}

// BorshReader decodes Borsh primitives from a byte slice.
//
// Every read fails with ErrShortBuffer when the input ends early; the
// reader does not advance on failure.
type BorshReader struct {
	data []byte
	off  int
}

// NewBorshReader creates a reader over data.
func NewBorshReader(data []byte) *BorshReader {
	return &BorshReader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *BorshReader) Remaining() int {
	return len(r.data) - r.off
}

func (r *BorshReader) next(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, r.off, r.Remaining())
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// ReadU8 reads a single byte.
func (r *BorshReader) ReadU8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadBool reads a u8 and rejects values other than 0 and 1.
func (r *BorshReader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("borsh: invalid bool value %d", v)
	}
}

// ReadU32 reads a little-endian uint32.
func (r *BorshReader) ReadU32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (r *BorshReader) ReadU64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

// ReadU128 reads a 128-bit unsigned integer and returns its high and low halves.
func (r *BorshReader) ReadU128() (hi, lo uint64, err error) {
	b, err := r.next(16)
	if err != nil {
		return 0, 0, err
	}

	return binary.LittleEndian.Uint64(b[8:]), binary.LittleEndian.Uint64(b[:8]), nil
}

// ReadString reads a u32 length-prefixed UTF-8 string.
func (r *BorshReader) ReadString() (string, error) {
	b, err := r.readPrefixed()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w at offset %d", ErrInvalidUTF8, r.off-len(b))
	}

	return string(b), nil
}

// ReadBytes reads a u32 length-prefixed byte slice and returns a copy.
func (r *BorshReader) ReadBytes() ([]byte, error) {
	b, err := r.readPrefixed()
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out, nil
}

func (r *BorshReader) readPrefixed() ([]byte, error) {
	start := r.off

	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	// compare before converting: int(n) may be negative on 32-bit platforms
	if uint64(n) > uint64(r.Remaining()) {
		err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, r.off, r.Remaining())
		r.off = start

		return nil, err
	}

	return r.next(int(n))
}

// BorshSerializer encodes values that implement BorshMarshaler and BorshUnmarshaler.
type BorshSerializer struct{}

var _ Serializer = BorshSerializer{}

// NewBorshSerializer creates a Borsh serializer.
func NewBorshSerializer() BorshSerializer {
	return BorshSerializer{}
}

// Type returns format.SerializationBorsh.
func (BorshSerializer) Type() format.SerializationType {
	return format.SerializationBorsh
}

// Marshal encodes v, which must implement BorshMarshaler.
func (BorshSerializer) Marshal(v any) ([]byte, error) {
	m, ok := v.(BorshMarshaler)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotBorshMarshaler, v)
	}

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	if err := m.MarshalBorsh(NewBorshWriter(buf)); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}

// Unmarshal decodes data into v, which must implement BorshUnmarshaler.
// The whole input must be consumed. When v is a pointer, the value is
// decoded into a fresh copy and *v is only assigned on success.
func (BorshSerializer) Unmarshal(data []byte, v any) error {
	u, ok := v.(BorshUnmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotBorshMarshaler, v)
	}

	rv := reflect.ValueOf(v)
	var staged reflect.Value
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		staged = reflect.New(rv.Elem().Type())
		if su, ok := staged.Interface().(BorshUnmarshaler); ok {
			u = su
		} else {
			staged = reflect.Value{}
		}
	}

	r := NewBorshReader(data)
	if err := u.UnmarshalBorsh(r); err != nil {
		return err
	}

	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, r.Remaining())
	}

	if staged.IsValid() {
		rv.Elem().Set(staged.Elem())
	}

	return nil
}

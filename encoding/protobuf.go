package encoding

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/arloliu/serbench/format"
	"github.com/arloliu/serbench/internal/pool"
)

// ProtoMarshaler is implemented by values that append their protobuf wire encoding.
type ProtoMarshaler interface {
	AppendProto(b []byte) []byte
}

// ProtoUnmarshaler is implemented by values that decode their protobuf wire encoding.
type ProtoUnmarshaler interface {
	UnmarshalProto(b []byte) error
}

// ProtoSerializer encodes values in the protobuf wire format without
// generated message types.
type ProtoSerializer struct{}

var _ Serializer = ProtoSerializer{}

// NewProtoSerializer creates a protobuf wire serializer.
func NewProtoSerializer() ProtoSerializer {
	return ProtoSerializer{}
}

// Type returns format.SerializationProtobuf.
func (ProtoSerializer) Type() format.SerializationType {
	return format.SerializationProtobuf
}

// Marshal encodes v, which must implement ProtoMarshaler.
func (ProtoSerializer) Marshal(v any) ([]byte, error) {
	m, ok := v.(ProtoMarshaler)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotProtoMarshaler, v)
	}

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	buf.B = m.AppendProto(buf.B)

	return buf.Clone(), nil
}

// Unmarshal decodes data into v, which must implement ProtoUnmarshaler.
func (ProtoSerializer) Unmarshal(data []byte, v any) error {
	u, ok := v.(ProtoUnmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotProtoMarshaler, v)
	}

	return u.UnmarshalProto(data)
}

// ProtoFieldFunc handles one decoded field. b holds the field value
// following the tag; the function returns the number of bytes it consumed,
// or a negative protowire error code.
type ProtoFieldFunc func(num protowire.Number, typ protowire.Type, b []byte) int

// ConsumeProtoFields walks the fields of a protobuf message. Fields for
// which fn returns 0 are skipped as unknown.
func ConsumeProtoFields(b []byte, fn ProtoFieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("protobuf: invalid tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		m := fn(num, typ, b)
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return fmt.Errorf("protobuf: field %d: %w", num, protowire.ParseError(m))
		}
		b = b[m:]
	}

	return nil
}

package encoding

import (
	"errors"
	"fmt"

	"github.com/arloliu/serbench/format"
)

var (
	// ErrShortBuffer is returned when a Borsh payload ends before a value is complete.
	ErrShortBuffer = errors.New("encoding: short buffer")
	// ErrTrailingBytes is returned when bytes remain after a Borsh value is decoded.
	ErrTrailingBytes = errors.New("encoding: trailing bytes after value")
	// ErrInvalidUTF8 is returned when a decoded Borsh string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("encoding: invalid UTF-8 string")
	// ErrNotBorshMarshaler is returned when a value does not implement the Borsh methods.
	ErrNotBorshMarshaler = errors.New("encoding: value does not implement Borsh marshaling")
	// ErrNotProtoMarshaler is returned when a value does not implement the protobuf wire methods.
	ErrNotProtoMarshaler = errors.New("encoding: value does not implement protobuf wire marshaling")
)

// Serializer encodes values into a byte representation and decodes them back.
type Serializer interface {
	// Type returns the serialization format implemented by the serializer.
	Type() format.SerializationType

	// Marshal encodes v. The returned slice is owned by the caller.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v, which must be a non-nil pointer.
	Unmarshal(data []byte, v any) error
}

// CreateSerializer returns the serializer for the specified format.
func CreateSerializer(serializationType format.SerializationType) (Serializer, error) {
	switch serializationType {
	case format.SerializationJSON:
		return NewJSONSerializer(), nil
	case format.SerializationBorsh:
		return NewBorshSerializer(), nil
	case format.SerializationCBOR:
		return NewCBORSerializer(), nil
	case format.SerializationMsgPack:
		return NewMsgPackSerializer(), nil
	case format.SerializationProtobuf:
		return NewProtoSerializer(), nil
	default:
		return nil, fmt.Errorf("invalid serialization: %s", serializationType)
	}
}

// defaultFormatOrder lists the measured formats in report insertion order.
// JSON is the baseline and is measured separately.
var defaultFormatOrder = []format.SerializationType{
	format.SerializationBorsh,
	format.SerializationCBOR,
	format.SerializationMsgPack,
	format.SerializationProtobuf,
}

// DefaultSerializers returns one serializer per measured format, excluding the JSON baseline.
func DefaultSerializers() []Serializer {
	serializers := make([]Serializer, 0, len(defaultFormatOrder))
	for _, t := range defaultFormatOrder {
		s, err := CreateSerializer(t)
		if err != nil {
			panic(err)
		}
		serializers = append(serializers, s)
	}

	return serializers
}

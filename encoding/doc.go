// Package encoding provides the serialization strategies measured by the benchmark.
//
// A Serializer turns a value into bytes and back. Every strategy is
// reversible for the values it accepts: Unmarshal(Marshal(v)) reproduces v.
//
// # Strategies
//
//   - JSON (format.SerializationJSON): encoding/json, the size baseline.
//   - Borsh (format.SerializationBorsh): compact, non-self-describing binary
//     layout. Values describe their own layout by implementing
//     BorshMarshaler and BorshUnmarshaler.
//   - CBOR (format.SerializationCBOR): RFC 8949, structs encoded as maps.
//   - MessagePack (format.SerializationMsgPack): structs encoded as maps.
//   - Protobuf (format.SerializationProtobuf): protobuf wire format written
//     field by field through ProtoMarshaler and ProtoUnmarshaler, without
//     generated code.
//
// # Borsh Layout
//
// All integers are little-endian and fixed width:
//
//	u8    1 byte
//	u32   4 bytes
//	u64   8 bytes
//	u128  16 bytes, low 64 bits first
//	string  u32 byte length followed by UTF-8 bytes
//
// Fields are written in declaration order with no tags or padding. Decoding
// must consume the whole input; leftover bytes are reported as
// ErrTrailingBytes.
//
// # Usage
//
//	s, err := encoding.CreateSerializer(format.SerializationBorsh)
//	if err != nil {
//	    return err
//	}
//	data, err := s.Marshal(record)
//	...
//	var decoded sample.Record
//	err = s.Unmarshal(data, &decoded)
package encoding

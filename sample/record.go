package sample

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/arloliu/serbench/encoding"
)

// Protobuf field numbers of Record.
const (
	fieldLongFieldA protowire.Number = iota + 1
	fieldLongFieldB
	fieldLongFieldC
	fieldLongFieldX
	fieldLongFieldY
	fieldLongFieldZ
)

// Record is the benchmark sample: three short strings and three unsigned integers.
//
// Record is comparable with ==.
type Record struct {
	LongFieldA string `json:"long_field_a" cbor:"long_field_a" msgpack:"long_field_a"`
	LongFieldB string `json:"long_field_b" cbor:"long_field_b" msgpack:"long_field_b"`
	LongFieldC string `json:"long_field_c" cbor:"long_field_c" msgpack:"long_field_c"`
	LongFieldX uint64 `json:"long_field_x" cbor:"long_field_x" msgpack:"long_field_x"`
	LongFieldY uint64 `json:"long_field_y" cbor:"long_field_y" msgpack:"long_field_y"`
	LongFieldZ uint64 `json:"long_field_z" cbor:"long_field_z" msgpack:"long_field_z"`
}

var (
	_ encoding.BorshMarshaler   = Record{}
	_ encoding.BorshUnmarshaler = (*Record)(nil)
	_ encoding.ProtoMarshaler   = Record{}
	_ encoding.ProtoUnmarshaler = (*Record)(nil)
)

// New returns the fixed benchmark record.
func New() Record {
	return Record{
		LongFieldA: "String A",
		LongFieldB: "String B",
		LongFieldC: "String C",
		LongFieldX: 1,
		LongFieldY: 1,
		LongFieldZ: math.MaxUint64,
	}
}

// MarshalBorsh writes the record fields in declaration order.
func (r Record) MarshalBorsh(w *encoding.BorshWriter) error {
	for _, s := range [...]string{r.LongFieldA, r.LongFieldB, r.LongFieldC} {
		if err := w.WriteString(s); err != nil {
			return err
		}
	}

	w.WriteU64(r.LongFieldX)
	w.WriteU64(r.LongFieldY)
	w.WriteU64(r.LongFieldZ)

	return nil
}

// UnmarshalBorsh reads the record fields in declaration order.
func (r *Record) UnmarshalBorsh(br *encoding.BorshReader) error {
	var out Record
	var err error

	for _, s := range [...]*string{&out.LongFieldA, &out.LongFieldB, &out.LongFieldC} {
		if *s, err = br.ReadString(); err != nil {
			return err
		}
	}
	for _, v := range [...]*uint64{&out.LongFieldX, &out.LongFieldY, &out.LongFieldZ} {
		if *v, err = br.ReadU64(); err != nil {
			return err
		}
	}

	*r = out

	return nil
}

// AppendProto appends the protobuf wire encoding of the record to b.
// Zero-valued fields are omitted, as in proto3.
func (r Record) AppendProto(b []byte) []byte {
	b = appendProtoString(b, fieldLongFieldA, r.LongFieldA)
	b = appendProtoString(b, fieldLongFieldB, r.LongFieldB)
	b = appendProtoString(b, fieldLongFieldC, r.LongFieldC)
	b = appendProtoUint64(b, fieldLongFieldX, r.LongFieldX)
	b = appendProtoUint64(b, fieldLongFieldY, r.LongFieldY)
	b = appendProtoUint64(b, fieldLongFieldZ, r.LongFieldZ)

	return b
}

// UnmarshalProto decodes a protobuf wire message into the record.
// Unknown fields, and known fields with an unexpected wire type, are skipped.
func (r *Record) UnmarshalProto(b []byte) error {
	var out Record

	err := encoding.ConsumeProtoFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case fieldLongFieldA:
			return consumeProtoString(typ, b, &out.LongFieldA)
		case fieldLongFieldB:
			return consumeProtoString(typ, b, &out.LongFieldB)
		case fieldLongFieldC:
			return consumeProtoString(typ, b, &out.LongFieldC)
		case fieldLongFieldX:
			return consumeProtoUint64(typ, b, &out.LongFieldX)
		case fieldLongFieldY:
			return consumeProtoUint64(typ, b, &out.LongFieldY)
		case fieldLongFieldZ:
			return consumeProtoUint64(typ, b, &out.LongFieldZ)
		default:
			return 0
		}
	})
	if err != nil {
		return err
	}

	*r = out

	return nil
}

func appendProtoString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)

	return protowire.AppendString(b, s)
}

func appendProtoUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)

	return protowire.AppendVarint(b, v)
}

func consumeProtoString(typ protowire.Type, b []byte, dst *string) int {
	if typ != protowire.BytesType {
		return 0
	}
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}

	return n
}

func consumeProtoUint64(typ protowire.Type, b []byte, dst *uint64) int {
	if typ != protowire.VarintType {
		return 0
	}
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = v
	}

	return n
}

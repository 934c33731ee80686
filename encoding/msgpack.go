package encoding

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/arloliu/serbench/format"
)

// MsgPackSerializer encodes values as MessagePack. Structs are encoded as
// maps keyed by the `msgpack` struct tag.
type MsgPackSerializer struct{}

var _ Serializer = MsgPackSerializer{}

// NewMsgPackSerializer creates a MessagePack serializer.
func NewMsgPackSerializer() MsgPackSerializer {
	return MsgPackSerializer{}
}

// Type returns format.SerializationMsgPack.
func (MsgPackSerializer) Type() format.SerializationType {
	return format.SerializationMsgPack
}

// Marshal encodes v as MessagePack.
func (MsgPackSerializer) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (MsgPackSerializer) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

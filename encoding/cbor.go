package encoding

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/serbench/format"
)

// cborEncMode uses the core deterministic encoding rules, so equal values
// always produce identical bytes.
var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create cbor encoding mode: %v", err))
	}

	return em
}()

// CBORSerializer encodes values as CBOR (RFC 8949). Structs are encoded as
// maps keyed by the `cbor` struct tag, falling back to the `json` tag.
type CBORSerializer struct{}

var _ Serializer = CBORSerializer{}

// NewCBORSerializer creates a CBOR serializer.
func NewCBORSerializer() CBORSerializer {
	return CBORSerializer{}
}

// Type returns format.SerializationCBOR.
func (CBORSerializer) Type() format.SerializationType {
	return format.SerializationCBOR
}

// Marshal encodes v as deterministic CBOR.
func (CBORSerializer) Marshal(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (CBORSerializer) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

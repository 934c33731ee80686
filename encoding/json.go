package encoding

import (
	"encoding/json"

	"github.com/arloliu/serbench/format"
)

// JSONSerializer encodes values as compact JSON.
type JSONSerializer struct{}

var _ Serializer = JSONSerializer{}

// NewJSONSerializer creates a JSON serializer.
func NewJSONSerializer() JSONSerializer {
	return JSONSerializer{}
}

// Type returns format.SerializationJSON.
func (JSONSerializer) Type() format.SerializationType {
	return format.SerializationJSON
}

// Marshal encodes v as JSON without indentation.
func (JSONSerializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (JSONSerializer) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

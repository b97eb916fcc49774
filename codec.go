package beacon

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for raw payload text.
// Implement this interface to parse payloads in formats beyond the built-in
// JSON and YAML.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json. JSON is the wire format
// configuration payloads are conventionally published in.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v. Numbers decode as
// json.Number so integer and fractional values stay distinguishable.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// Ensure JSONCodec implements Codec.
var _ Codec = JSONCodec{}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// Ensure YAMLCodec implements Codec.
var _ Codec = YAMLCodec{}

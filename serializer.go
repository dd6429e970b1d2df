package posixshim

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Serializer defines the interface for manifest encoding and decoding.
// The default implementation uses MessagePack; JSON is offered for people.
type Serializer interface {
	// Marshal encodes a Go value to bytes.
	Marshal(v interface{}) ([]byte, error)

	// Unmarshal decodes bytes into a Go value.
	Unmarshal(data []byte, v interface{}) error
}

type MsgpackSerializer struct{}

func (ms MsgpackSerializer) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (ms MsgpackSerializer) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

type JSONSerializer struct {
	// Indent, when non-empty, pretty-prints the output with this indent.
	Indent string
}

func (js JSONSerializer) Marshal(v interface{}) ([]byte, error) {
	if js.Indent != "" {
		return json.MarshalIndent(v, "", js.Indent)
	}
	return json.Marshal(v)
}

func (js JSONSerializer) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

package server

import "encoding/json"

// JSONCodec lets connect carry plain Go structs. It is registered under the
// "json" name so it replaces the protobuf JSON codec.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

package typedindex

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// Serialization bridge: an Index encodes as exactly its raw value.
// The element and owner markers contribute nothing to the wire form;
// they are reattached by the static type at the decoding call site.
// Decoding performs no range validation — that remains the job of
// whichever indexing operation the decoded index is eventually applied
// to.

var (
	_ json.Marshaler   = Index[int, []int, int]{}
	_ json.Unmarshaler = (*Index[int, []int, int])(nil)
)

// MarshalJSON encodes the index as its bare raw value, with no envelope
// or type tag.
func (i Index[E, O, R]) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(i.raw)
}

// UnmarshalJSON decodes a bare raw value into the index.
func (i *Index[E, O, R]) UnmarshalJSON(data []byte) error {
	return gojson.Unmarshal(data, &i.raw)
}

package nspell

import (
	"bytes"
	"encoding/gob"
)

// gobEncode and gobDecode centralize the gob encode/decode pair reused
// by every persisted type's MarshalBinary/UnmarshalBinary (the teacher's
// own convention — see vocab.go, which predates this helper and inlines
// the same two calls directly).
func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

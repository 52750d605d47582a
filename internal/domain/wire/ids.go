package wire

import (
	"encoding/json"
	"fmt"
)

// IDs parsea los blobs savedPets/viewedPets: array de ids (string o número).
// Elementos vacíos o de otro tipo se descartan; el orden se mantiene y no se deduplica.
func IDs(raw []byte) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("payload is not a json array: %w", err)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err == nil {
			out = append(out, n.String())
		}
	}
	return out, nil
}

// EncodeIDs es el inverso de IDs; nil se guarda como [].
func EncodeIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}

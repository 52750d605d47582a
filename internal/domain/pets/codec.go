package pets

import (
	"encoding/json"
	"fmt"
	"time"

	"pet-adoption/internal/domain/wire"
)

const assetPrefix = "asset:"

// record es la forma persistida bajo la key "pets".
type record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Species     string   `json:"species,omitempty"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	Gender      string   `json:"gender"`
	Size        string   `json:"size,omitempty"`
	Temperament []string `json:"temperament,omitempty"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Status      Status   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Decode parsea el blob de pets. Solo falla si raw no es un array JSON.
func Decode(raw []byte) ([]Pet, error) {
	return DecodeAt(raw, time.Now())
}

// DecodeAt es Decode con reloj explícito (default de fechas faltantes).
// Campos inválidos caen a default: fechas => now, status => available.
func DecodeAt(raw []byte, now time.Time) ([]Pet, error) {
	recs, _, err := wire.Records(raw)
	if err != nil {
		return nil, fmt.Errorf("decode pets: %w", err)
	}

	out := make([]Pet, 0, len(recs))
	for _, r := range recs {
		id := r.String("id")
		if id == "" {
			continue
		}
		status, ok := ParseStatus(r.String("status"))
		if !ok {
			status = StatusAvailable
		}
		created := r.TimeOr("createdAt", now)
		out = append(out, Pet{
			ID:          id,
			Name:        r.String("name"),
			Species:     r.String("species"),
			Breed:       r.String("breed"),
			Age:         r.String("age"),
			Gender:      r.String("gender"),
			Size:        r.String("size"),
			Temperament: r.Strings("temperament"),
			Description: r.String("description"),
			ImageRef:    decodeImage(r.Raw("imageUrl")),
			Status:      status,
			CreatedAt:   created,
			UpdatedAt:   r.TimeOr("updatedAt", created),
		})
	}
	return out, nil
}

// decodeImage acepta: "https://..." | 12 (asset empaquetado) | {"uri": "..."}.
func decodeImage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return assetPrefix + n.String()
	}
	var obj struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URI
	}
	return ""
}

// Encode serializa pets con fechas ISO-8601 (UTC, nanosegundos).
func Encode(list []Pet) ([]byte, error) {
	recs := make([]record, 0, len(list))
	for _, p := range list {
		recs = append(recs, record{
			ID:          p.ID,
			Name:        p.Name,
			Species:     p.Species,
			Breed:       p.Breed,
			Age:         p.Age,
			Gender:      p.Gender,
			Size:        p.Size,
			Temperament: p.Temperament,
			Description: p.Description,
			ImageURL:    p.ImageRef,
			Status:      p.Status,
			CreatedAt:   wire.FormatTime(p.CreatedAt),
			UpdatedAt:   wire.FormatTime(p.UpdatedAt),
		})
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encode pets: %w", err)
	}
	return b, nil
}

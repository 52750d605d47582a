package kv

import "context"

// Keys persistidas por el store de adopciones. Cada una guarda un array JSON.
const (
	KeyPets         = "pets"
	KeyApplications = "applications"
	KeySavedPets    = "savedPets"
	KeyViewedPets   = "viewedPets"
)

// AllKeys en el orden en que se leen y se limpian.
var AllKeys = []string{KeyPets, KeyApplications, KeySavedPets, KeyViewedPets}

// Store es el backend clave/valor donde se persisten los blobs JSON.
// Contrato:
// - Get devuelve (nil, nil) si la key no existe.
// - Set hace upsert.
// - Remove es idempotente.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

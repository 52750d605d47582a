package adoption

import (
	"slices"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/wire"
	"pet-adoption/internal/ports/kv"
)

// state es un snapshot inmutable. Las mutaciones arman uno nuevo con clone()
// y lo publican recién cuando el backend confirmó la escritura.
type state struct {
	pets   []pets.Pet
	apps   []applications.Application
	saved  []string
	viewed []string

	// stored es el último payload conocido por key, para restaurar si una escritura
	// posterior falla. nil = la key no existe en el backend; key ausente del map = desconocido.
	stored map[string][]byte

	// loadErr queda seteado si alguna key cayó a default en el último Load.
	loadErr error
}

func emptyState() *state {
	return &state{stored: map[string][]byte{}}
}

// clone copia los slices de primer nivel; los elementos se reemplazan, nunca se mutan en sitio.
func (s *state) clone() *state {
	out := &state{
		pets:    slices.Clone(s.pets),
		apps:    slices.Clone(s.apps),
		saved:   slices.Clone(s.saved),
		viewed:  slices.Clone(s.viewed),
		stored:  make(map[string][]byte, len(s.stored)),
		loadErr: s.loadErr,
	}
	for k, v := range s.stored {
		out.stored[k] = v
	}
	return out
}

func (s *state) petIndex(id string) int {
	return slices.IndexFunc(s.pets, func(p pets.Pet) bool { return p.ID == id })
}

func (s *state) appIndex(id string) int {
	return slices.IndexFunc(s.apps, func(a applications.Application) bool { return a.ID == id })
}

func (s *state) hasPet(id string) bool { return s.petIndex(id) >= 0 }

// approvedFor devuelve el id de otra solicitud aprobada para la mascota ("" si no hay).
func (s *state) approvedFor(petID, exceptID string) string {
	for _, a := range s.apps {
		if a.PetID == petID && a.ID != exceptID && a.Status == applications.StatusApproved {
			return a.ID
		}
	}
	return ""
}

func (s *state) hasPendingFor(petID, exceptID string) bool {
	for _, a := range s.apps {
		if a.PetID == petID && a.ID != exceptID && a.Status == applications.StatusPending {
			return true
		}
	}
	return false
}

// encode serializa la colección que vive bajo key.
func (s *state) encode(key string) ([]byte, error) {
	switch key {
	case kv.KeyPets:
		return pets.Encode(s.pets)
	case kv.KeyApplications:
		return applications.Encode(s.apps)
	case kv.KeySavedPets:
		return wire.EncodeIDs(s.saved)
	case kv.KeyViewedPets:
		return wire.EncodeIDs(s.viewed)
	}
	return nil, ErrInvalidInput
}

// normalizeSets deduplica y saca ids de mascotas que ya no existen.
func (s *state) normalizeSets() (pruned int) {
	clean := func(ids []string) []string {
		seen := make(map[string]struct{}, len(ids))
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup || !s.hasPet(id) {
				pruned++
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
		return out
	}
	s.saved = clean(s.saved)
	s.viewed = clean(s.viewed)
	return pruned
}

// reconcileStatuses ajusta el status de cada mascota a sus solicitudes:
// con una aprobada => adopted; adopted sin aprobada o pending sin pendientes => available
// (pending si markPending y le quedan solicitudes pendientes).
func (s *state) reconcileStatuses(markPending bool) (fixed int) {
	for i, p := range s.pets {
		want := p.Status
		switch {
		case s.approvedFor(p.ID, "") != "":
			want = pets.StatusAdopted
		case p.Status == pets.StatusAdopted && markPending && s.hasPendingFor(p.ID, ""):
			want = pets.StatusPending
		case p.Status == pets.StatusAdopted:
			want = pets.StatusAvailable
		case p.Status == pets.StatusPending && !s.hasPendingFor(p.ID, ""):
			want = pets.StatusAvailable
		}
		if want != p.Status {
			p = p.Clone()
			p.Status = want
			s.pets[i] = p
			fixed++
		}
	}
	return fixed
}

func removeID(ids []string, id string) ([]string, bool) {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids, false
	}
	return slices.Delete(slices.Clone(ids), i, i+1), true
}

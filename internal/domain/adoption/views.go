package adoption

import (
	"fmt"
	"slices"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
)

// Las vistas leen el último snapshot publicado; no bloquean ni escriben.
// Todo lo que devuelven es copia: el caller puede modificarlo sin afectar el store.

func (s *Store) Pets() []pets.Pet {
	return filterPets(s.snapshot().pets, func(pets.Pet) bool { return true })
}

func (s *Store) AvailablePets() []pets.Pet {
	return s.PetsByStatus(pets.StatusAvailable)
}

func (s *Store) PetsByStatus(status pets.Status) []pets.Pet {
	return filterPets(s.snapshot().pets, func(p pets.Pet) bool { return p.Status == status })
}

func (s *Store) PetByID(id string) (pets.Pet, error) {
	st := s.snapshot()
	i := st.petIndex(id)
	if i < 0 {
		return pets.Pet{}, fmt.Errorf("pet %q: %w", id, ErrNotFound)
	}
	return st.pets[i].Clone(), nil
}

// SavedPets resuelve los ids guardados en el orden del set.
func (s *Store) SavedPets() []pets.Pet {
	st := s.snapshot()
	out := make([]pets.Pet, 0, len(st.saved))
	for _, id := range st.saved {
		if i := st.petIndex(id); i >= 0 {
			out = append(out, st.pets[i].Clone())
		}
	}
	return out
}

func (s *Store) SavedPetIDs() []string  { return slices.Clone(s.snapshot().saved) }
func (s *Store) ViewedPetIDs() []string { return slices.Clone(s.snapshot().viewed) }

func (s *Store) IsSaved(petID string) bool {
	return slices.Contains(s.snapshot().saved, petID)
}

func (s *Store) IsViewed(petID string) bool {
	return slices.Contains(s.snapshot().viewed, petID)
}

func (s *Store) Applications() []applications.Application {
	return slices.Clone(s.snapshot().apps)
}

func (s *Store) ApplicationsByStatus(status applications.Status) []applications.Application {
	return filterApps(s.snapshot().apps, func(a applications.Application) bool { return a.Status == status })
}

func (s *Store) ApplicationsForPet(petID string) []applications.Application {
	return filterApps(s.snapshot().apps, func(a applications.Application) bool { return a.PetID == petID })
}

func (s *Store) ApplicationByID(id string) (applications.Application, error) {
	st := s.snapshot()
	i := st.appIndex(id)
	if i < 0 {
		return applications.Application{}, fmt.Errorf("application %q: %w", id, ErrNotFound)
	}
	return st.apps[i], nil
}

// Stats son los contadores del dashboard de admin.
type Stats struct {
	TotalPets     int `json:"totalPets"`
	AvailablePets int `json:"availablePets"`
	PendingPets   int `json:"pendingPets"`
	AdoptedPets   int `json:"adoptedPets"`

	TotalApplications    int `json:"totalApplications"`
	PendingApplications  int `json:"pendingApplications"`
	ApprovedApplications int `json:"approvedApplications"`
	RejectedApplications int `json:"rejectedApplications"`

	SavedPets  int `json:"savedPets"`
	ViewedPets int `json:"viewedPets"`
}

func (s *Store) Stats() Stats {
	st := s.snapshot()
	out := Stats{
		TotalPets:         len(st.pets),
		TotalApplications: len(st.apps),
		SavedPets:         len(st.saved),
		ViewedPets:        len(st.viewed),
	}
	for _, p := range st.pets {
		switch p.Status {
		case pets.StatusAvailable:
			out.AvailablePets++
		case pets.StatusPending:
			out.PendingPets++
		case pets.StatusAdopted:
			out.AdoptedPets++
		}
	}
	for _, a := range st.apps {
		switch a.Status {
		case applications.StatusPending:
			out.PendingApplications++
		case applications.StatusApproved:
			out.ApprovedApplications++
		case applications.StatusRejected:
			out.RejectedApplications++
		}
	}
	return out
}

func filterPets(in []pets.Pet, keep func(pets.Pet) bool) []pets.Pet {
	out := make([]pets.Pet, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func filterApps(in []applications.Application, keep func(applications.Application) bool) []applications.Application {
	out := make([]applications.Application, 0, len(in))
	for _, a := range in {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

package adoption

import (
	"context"
	"slices"

	"pet-adoption/internal/domain/pets"
)

// BrowseState es lo que ve el usuario en el flujo de "swipe":
// Browsing(Index) con la mascota actual, o AllViewed cuando no queda ninguna sin ver.
type BrowseState struct {
	Index     int
	Pet       *pets.Pet
	AllViewed bool
}

// NextUnviewedPet recorre la lista en forma circular desde currentIndex+1
// y devuelve el índice de la primera mascota no vista. ok == false si ya se vieron todas.
// currentIndex fuera de rango se normaliza (módulo len).
func (s *Store) NextUnviewedPet(currentIndex int) (index int, ok bool) {
	return nextUnviewed(s.snapshot(), currentIndex)
}

func nextUnviewed(st *state, currentIndex int) (int, bool) {
	n := len(st.pets)
	if n == 0 {
		return 0, false
	}
	viewed := make(map[string]struct{}, len(st.viewed))
	for _, id := range st.viewed {
		viewed[id] = struct{}{}
	}
	start := normalizeIndex(currentIndex, n)
	for step := 1; step <= n; step++ {
		i := (start + step) % n
		if _, seen := viewed[st.pets[i].ID]; !seen {
			return i, true
		}
	}
	return 0, false
}

// Current muestra la mascota en index si no fue vista; si no, la próxima sin ver.
func (s *Store) Current(index int) BrowseState {
	st := s.snapshot()
	if len(st.pets) == 0 {
		return BrowseState{AllViewed: true}
	}
	i := normalizeIndex(index, len(st.pets))
	if !slices.Contains(st.viewed, st.pets[i].ID) {
		return stateAt(st, i)
	}
	return browseFrom(st, i)
}

// Pass marca como vista la mascota en index y avanza.
func (s *Store) Pass(ctx context.Context, index int) (BrowseState, error) {
	return s.advance(ctx, "browse_pass", index, false)
}

// Save guarda (si no estaba) y marca como vista la mascota en index, y avanza.
// A diferencia de ToggleSavedPet nunca la saca de favoritos.
func (s *Store) Save(ctx context.Context, index int) (BrowseState, error) {
	return s.advance(ctx, "browse_save", index, true)
}

func (s *Store) advance(ctx context.Context, op string, index int, save bool) (BrowseState, error) {
	var from int
	err := s.mutate(ctx, op, func(cur *state) (*state, []string, error) {
		if len(cur.pets) == 0 {
			return cur, nil, nil
		}
		from = normalizeIndex(index, len(cur.pets))
		return markViewed(cur, cur.pets[from].ID, save)
	})
	if err != nil {
		return BrowseState{}, err
	}

	st := s.snapshot()
	if len(st.pets) == 0 {
		return BrowseState{AllViewed: true}, nil
	}
	return browseFrom(st, from), nil
}

func browseFrom(st *state, from int) BrowseState {
	i, ok := nextUnviewed(st, from)
	if !ok {
		return BrowseState{Index: normalizeIndex(from, len(st.pets)), AllViewed: true}
	}
	return stateAt(st, i)
}

func stateAt(st *state, i int) BrowseState {
	p := st.pets[i].Clone()
	return BrowseState{Index: i, Pet: &p}
}

func normalizeIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

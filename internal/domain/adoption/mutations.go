package adoption

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/ports/kv"
)

// change arma el próximo estado a partir del actual y dice qué keys hay que escribir.
// dirty vacío = no-op (no se escribe ni se publica nada).
type change func(cur *state) (next *state, dirty []string, err error)

// mutate corre un change con el lock de escritura tomado.
// El snapshot nuevo se publica solo si todas las keys quedaron escritas;
// si una falla, las ya escritas vuelven a su payload anterior.
func (s *Store) mutate(ctx context.Context, op string, fn change) (err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveMutation(op, started, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrClosed
	}

	cur := s.snapshot()
	next, dirty, err := fn(cur)
	if err != nil {
		return err
	}
	if len(dirty) == 0 {
		return nil
	}

	// Una vez empezada la escritura corre hasta terminar aunque el caller cancele.
	if err := s.persist(context.WithoutCancel(ctx), op, cur, next, dirty); err != nil {
		return err
	}
	s.publish(next)
	return nil
}

func (s *Store) persist(ctx context.Context, op string, prev, next *state, keys []string) error {
	written := make([]string, 0, len(keys))
	for _, key := range keys {
		payload, err := next.encode(key)
		if err == nil {
			err = s.kv.Set(ctx, key, payload)
		}
		if err != nil {
			s.log.Error("write failed, rolling back", map[string]any{
				"op": op, "key": key, "written": written, "err": err,
			})
			s.restore(ctx, prev, written)
			return &StorageError{Op: opSet, Key: key, Err: err}
		}
		next.stored[key] = payload
		written = append(written, key)
	}
	return nil
}

// restore es best-effort: loguea lo que no pudo deshacer.
func (s *Store) restore(ctx context.Context, prev *state, keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		key := keys[i]
		payload, known := prev.stored[key]
		if !known {
			s.log.Warn("cannot restore key, previous payload unknown", map[string]any{"key": key})
			continue
		}

		var err error
		if payload == nil {
			err = s.kv.Remove(ctx, key)
		} else {
			err = s.kv.Set(ctx, key, payload)
		}
		if err != nil {
			s.log.Error("restore failed", map[string]any{"key": key, "err": err})
		}
	}
}

// ----- pets -----

func (s *Store) AddPet(ctx context.Context, in pets.Input) (pets.Pet, error) {
	if err := in.Validate(); err != nil {
		return pets.Pet{}, err
	}

	var out pets.Pet
	err := s.mutate(ctx, "add_pet", func(cur *state) (*state, []string, error) {
		next := cur.clone()
		out = pets.New(s.newID(), in, s.now())
		next.pets = append(next.pets, out)
		return next, []string{kv.KeyPets}, nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return out.Clone(), nil
}

func (s *Store) UpdatePet(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	if err := patch.Validate(); err != nil {
		return pets.Pet{}, err
	}

	var out pets.Pet
	err := s.mutate(ctx, "update_pet", func(cur *state) (*state, []string, error) {
		i := cur.petIndex(id)
		if i < 0 {
			return nil, nil, fmt.Errorf("pet %q: %w", id, ErrNotFound)
		}
		next := cur.clone()
		out = patch.Apply(cur.pets[i], s.now())
		next.pets[i] = out
		return next, []string{kv.KeyPets}, nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return out.Clone(), nil
}

// DeletePet saca la mascota y su id de favoritos y vistos.
// Las solicitudes que la referencian se conservan (quedan huérfanas).
func (s *Store) DeletePet(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_pet", func(cur *state) (*state, []string, error) {
		i := cur.petIndex(id)
		if i < 0 {
			return nil, nil, fmt.Errorf("pet %q: %w", id, ErrNotFound)
		}
		next := cur.clone()
		next.pets = append(next.pets[:i], next.pets[i+1:]...)

		dirty := []string{kv.KeyPets}
		var removed bool
		if next.saved, removed = removeID(next.saved, id); removed {
			dirty = append(dirty, kv.KeySavedPets)
		}
		if next.viewed, removed = removeID(next.viewed, id); removed {
			dirty = append(dirty, kv.KeyViewedPets)
		}
		return next, dirty, nil
	})
}

// ----- applications -----

// SubmitApplication valida el formulario y crea una solicitud pending.
// Con PolicyMarkPending además pasa la mascota de available a pending.
func (s *Store) SubmitApplication(ctx context.Context, in applications.Input) (applications.Application, error) {
	if err := in.Validate(); err != nil {
		return applications.Application{}, err
	}

	var out applications.Application
	err := s.mutate(ctx, "submit_application", func(cur *state) (*state, []string, error) {
		petID := strings.TrimSpace(in.PetID)
		pi := cur.petIndex(petID)
		if pi < 0 {
			return nil, nil, fmt.Errorf("pet %q: %w", petID, ErrNotFound)
		}

		now := s.now()
		next := cur.clone()
		out = applications.New(s.newID(), cur.pets[pi].Name, in, now)
		next.apps = append(next.apps, out)
		dirty := []string{kv.KeyApplications}

		if s.policy == PolicyMarkPending && cur.pets[pi].Status == pets.StatusAvailable {
			p := cur.pets[pi].Clone()
			p.Status = pets.StatusPending
			p.UpdatedAt = now
			next.pets[pi] = p
			dirty = append(dirty, kv.KeyPets)
		}
		return next, dirty, nil
	})
	if err != nil {
		return applications.Application{}, err
	}
	return out, nil
}

// SetApplicationStatus revisa una solicitud pending.
//   - approved: la mascota pasa a adopted. Falla si ya hay otra aprobada para la misma mascota.
//     Si la mascota ya no existe, la solicitud igual se aprueba.
//   - rejected: si la mascota quedó pending sin otras solicitudes pending, vuelve a available.
func (s *Store) SetApplicationStatus(ctx context.Context, id string, to applications.Status) (applications.Application, error) {
	if !to.IsTerminal() {
		return applications.Application{}, fmt.Errorf("%w: cannot move application to %q", ErrInvalidTransition, to)
	}

	var out applications.Application
	err := s.mutate(ctx, "set_application_status", func(cur *state) (*state, []string, error) {
		ai := cur.appIndex(id)
		if ai < 0 {
			return nil, nil, fmt.Errorf("application %q: %w", id, ErrNotFound)
		}
		app := cur.apps[ai]
		if app.Status != applications.StatusPending {
			return nil, nil, fmt.Errorf("%w: application %q is already %s", ErrInvalidTransition, id, app.Status)
		}

		pi := cur.petIndex(app.PetID)
		if to == applications.StatusApproved {
			if other := cur.approvedFor(app.PetID, app.ID); other != "" {
				return nil, nil, fmt.Errorf("%w: pet %q already has approved application %q", ErrInvalidTransition, app.PetID, other)
			}
			if pi >= 0 && cur.pets[pi].Status == pets.StatusAdopted {
				return nil, nil, fmt.Errorf("%w: pet %q is already adopted", ErrInvalidTransition, app.PetID)
			}
		}

		now := s.now()
		next := cur.clone()
		out = app.Review(to, now)
		next.apps[ai] = out
		dirty := []string{kv.KeyApplications}

		if pi < 0 {
			if to == applications.StatusApproved {
				s.log.Warn("approved application for missing pet", map[string]any{"application_id": id, "pet_id": app.PetID})
			}
			return next, dirty, nil
		}

		p := cur.pets[pi].Clone()
		switch {
		case to == applications.StatusApproved:
			p.Status = pets.StatusAdopted
		case p.Status == pets.StatusPending && !cur.hasPendingFor(app.PetID, app.ID):
			p.Status = pets.StatusAvailable
		default:
			return next, dirty, nil
		}
		p.UpdatedAt = now
		next.pets[pi] = p
		return next, append(dirty, kv.KeyPets), nil
	})
	if err != nil {
		return applications.Application{}, err
	}
	return out, nil
}

func (s *Store) ApproveApplication(ctx context.Context, id string) (applications.Application, error) {
	return s.SetApplicationStatus(ctx, id, applications.StatusApproved)
}

func (s *Store) RejectApplication(ctx context.Context, id string) (applications.Application, error) {
	return s.SetApplicationStatus(ctx, id, applications.StatusRejected)
}

// ----- saved / viewed -----

// ToggleSavedPet agrega o saca petID de favoritos y devuelve si quedó guardada.
// Sacar un id huérfano está permitido; agregar exige que la mascota exista.
func (s *Store) ToggleSavedPet(ctx context.Context, petID string) (saved bool, err error) {
	err = s.mutate(ctx, "toggle_saved_pet", func(cur *state) (*state, []string, error) {
		next := cur.clone()
		var removed bool
		if next.saved, removed = removeID(next.saved, petID); removed {
			saved = false
			return next, []string{kv.KeySavedPets}, nil
		}
		if !cur.hasPet(petID) {
			return nil, nil, fmt.Errorf("pet %q: %w", petID, ErrNotFound)
		}
		next.saved = append(next.saved, petID)
		saved = true
		return next, []string{kv.KeySavedPets}, nil
	})
	return saved, err
}

// MarkPetViewed es idempotente: si ya estaba no escribe nada.
func (s *Store) MarkPetViewed(ctx context.Context, petID string) error {
	return s.mutate(ctx, "mark_pet_viewed", func(cur *state) (*state, []string, error) {
		return markViewed(cur, petID, false)
	})
}

func markViewed(cur *state, petID string, save bool) (*state, []string, error) {
	if !cur.hasPet(petID) {
		return nil, nil, fmt.Errorf("pet %q: %w", petID, ErrNotFound)
	}
	next := cur.clone()
	var dirty []string
	if save && !slices.Contains(cur.saved, petID) {
		next.saved = append(next.saved, petID)
		dirty = append(dirty, kv.KeySavedPets)
	}
	if !slices.Contains(cur.viewed, petID) {
		next.viewed = append(next.viewed, petID)
		dirty = append(dirty, kv.KeyViewedPets)
	}
	return next, dirty, nil
}

// ResetViewedPets deja en vistos solo las mascotas guardadas.
func (s *Store) ResetViewedPets(ctx context.Context) error {
	return s.mutate(ctx, "reset_viewed_pets", func(cur *state) (*state, []string, error) {
		kept := make([]string, 0, len(cur.viewed))
		for _, id := range cur.viewed {
			if slices.Contains(cur.saved, id) {
				kept = append(kept, id)
			}
		}
		if len(kept) == len(cur.viewed) {
			return cur, nil, nil
		}
		next := cur.clone()
		next.viewed = kept
		return next, []string{kv.KeyViewedPets}, nil
	})
}

// ----- data management -----

// ClearAllData borra las cuatro keys y recarga (queda el seed).
// Siempre recarga, aunque algún Remove falle; en ese caso devuelve ErrStorageWrite.
func (s *Store) ClearAllData(ctx context.Context) (err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveMutation("clear_all_data", started, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrClosed
	}

	ctx = context.WithoutCancel(ctx)
	var failures []error
	for _, key := range kv.AllKeys {
		if rerr := s.kv.Remove(ctx, key); rerr != nil {
			s.log.Error("remove failed", map[string]any{"key": key, "err": rerr})
			failures = append(failures, &StorageError{Op: opRemove, Key: key, Err: rerr})
		}
	}

	next, rerr := s.read(ctx)
	if rerr != nil {
		failures = append(failures, rerr)
	} else {
		s.publish(next)
	}
	return errors.Join(failures...)
}

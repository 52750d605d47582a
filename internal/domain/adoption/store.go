// Package adoption es el store de adopciones: estado autoritativo de mascotas,
// solicitudes, favoritos y vistos, persistido en un kv.Store.
package adoption

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/wire"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/kv"
)

// SubmissionPolicy define qué le pasa a la mascota cuando llega una solicitud.
type SubmissionPolicy string

const (
	// PolicyApprovalOnly: la mascota sigue available hasta que se aprueba una solicitud.
	PolicyApprovalOnly SubmissionPolicy = "approval-only"
	// PolicyMarkPending: available => pending al recibir la primera solicitud.
	PolicyMarkPending SubmissionPolicy = "mark-pending"
)

func ParseSubmissionPolicy(s string) (SubmissionPolicy, error) {
	switch p := SubmissionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyApprovalOnly, nil
	case PolicyApprovalOnly, PolicyMarkPending:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown submission policy %q", ErrInvalidInput, s)
}

type Options struct {
	KV      kv.Store
	Logger  logger.Logger
	Metrics *metrics.Recorder
	Policy  SubmissionPolicy

	// Seed arma el catálogo inicial cuando no hay pets guardadas. Default: pets.Seed.
	Seed func(now time.Time) []pets.Pet
}

// Store serializa las mutaciones con mu; las lecturas toman el snapshot publicado
// en cur y nunca esperan a un writer.
type Store struct {
	kv      kv.Store
	log     logger.Logger
	metrics *metrics.Recorder
	policy  SubmissionPolicy
	seed    func(now time.Time) []pets.Pet

	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	cur    atomic.Pointer[state]
	closed atomic.Bool

	search searchCache
}

func NewStore(opts Options) *Store {
	s := &Store{
		kv:      opts.KV,
		log:     opts.Logger,
		metrics: opts.Metrics,
		policy:  opts.Policy,
		seed:    opts.Seed,
		now:     time.Now,
		newID:   newID,
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.policy == "" {
		s.policy = PolicyApprovalOnly
	}
	if s.seed == nil {
		s.seed = pets.Seed
	}
	s.log = s.log.With(map[string]any{"component": "adoption_store"})
	s.cur.Store(emptyState())
	return s
}

// newID usa UUID v7 (ordenable por tiempo); si falla el reloj/entropía cae a v4.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *Store) Policy() SubmissionPolicy { return s.policy }

// Err devuelve el error del último Load si alguna key cayó a default (nil si cargó limpio).
func (s *Store) Err() error {
	return s.snapshot().loadErr
}

func (s *Store) snapshot() *state {
	return s.cur.Load()
}

// Load lee las cuatro keys en paralelo y reemplaza el estado en memoria.
// Errores de lectura o JSON inválido no cortan: la colección cae a default
// (seed para pets, vacío para el resto) y quedan reportados en Err().
// Solo devuelve error si ctx se canceló o el store está cerrado.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrClosed
	}
	next, err := s.read(ctx)
	if err != nil {
		return err
	}
	s.publish(next)
	return nil
}

// Refresh es Load; existe para el pull-to-refresh de las pantallas.
func (s *Store) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Teardown espera la mutación en curso, cierra el store y descarta el estado.
func (s *Store) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed.Store(true)
	s.cur.Store(emptyState())
	s.log.Info("store closed", nil)
}

func (s *Store) read(ctx context.Context) (*state, error) {
	raws := make([][]byte, len(kv.AllKeys))
	errs := make([]error, len(kv.AllKeys))

	var g errgroup.Group
	for i, key := range kv.AllKeys {
		i, key := i, key
		g.Go(func() error {
			raws[i], errs[i] = s.kv.Get(ctx, key)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	next := emptyState()
	var failures []error
	appsOK := true

	fail := func(op, key string, err error) {
		failures = append(failures, &StorageError{Op: op, Key: key, Err: err})
		if key == kv.KeyApplications {
			appsOK = false
		}
		s.metrics.LoadFallback()
		s.log.Warn("load fallback", map[string]any{"key": key, "op": op, "err": err})
	}

	for i, key := range kv.AllKeys {
		raw, err := raws[i], errs[i]
		if err != nil {
			fail(opGet, key, err)
			continue
		}
		// Lectura OK: este es el payload a restaurar si una escritura posterior falla.
		next.stored[key] = raw
		// "null" guardado cuenta como key ausente.
		if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}

		var derr error
		switch key {
		case kv.KeyPets:
			next.pets, derr = pets.DecodeAt(raw, now)
		case kv.KeyApplications:
			next.apps, derr = applications.DecodeAt(raw, now)
		case kv.KeySavedPets:
			next.saved, derr = wire.IDs(raw)
		case kv.KeyViewedPets:
			next.viewed, derr = wire.IDs(raw)
		}
		if derr != nil {
			fail(opDecode, key, derr)
		}
	}

	// Sin pets decodificadas (key ausente, error de lectura o JSON inválido) => seed.
	// Un array vacío guardado se respeta.
	if next.pets == nil {
		next.pets = s.seed(now)
	}
	if pruned := next.normalizeSets(); pruned > 0 {
		s.log.Info("pruned stale saved/viewed ids", map[string]any{"count": pruned})
	}
	// Sin solicitudes confiables no se corrige nada: se respeta el status guardado.
	if appsOK {
		if fixed := next.reconcileStatuses(s.policy == PolicyMarkPending); fixed > 0 {
			s.log.Warn("pet status out of sync with applications, corrected", map[string]any{"count": fixed})
		}
	}

	next.loadErr = errors.Join(failures...)
	s.log.Debug("store loaded", map[string]any{
		"pets":         len(next.pets),
		"applications": len(next.apps),
		"saved":        len(next.saved),
		"viewed":       len(next.viewed),
		"degraded":     next.loadErr != nil,
	})
	return next, nil
}

// publish deja visible un snapshot nuevo y actualiza los gauges.
func (s *Store) publish(next *state) {
	s.cur.Store(next)

	counts := map[string]int{
		string(pets.StatusAvailable): 0,
		string(pets.StatusPending):   0,
		string(pets.StatusAdopted):   0,
	}
	for _, p := range next.pets {
		counts[string(p.Status)]++
	}
	s.metrics.SetPetCounts(counts)
}

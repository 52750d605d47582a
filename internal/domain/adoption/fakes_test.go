package adoption

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
)

// fakeKV es un backend en memoria que cuenta escrituras y permite inyectar fallas por key.
type fakeKV struct {
	mu   sync.Mutex
	data map[string][]byte

	sets    map[string]int
	removes map[string]int

	failGet    map[string]error
	failSet    map[string]error
	failRemove map[string]error
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		data:       map[string][]byte{},
		sets:       map[string]int{},
		removes:    map[string]int{},
		failGet:    map[string]error{},
		failSet:    map[string]error{},
		failRemove: map[string]error{},
	}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failGet[key]; err != nil {
		return nil, err
	}
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failSet[key]; err != nil {
		return err
	}
	f.sets[key]++
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeKV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failRemove[key]; err != nil {
		return err
	}
	f.removes[key]++
	delete(f.data, key)
	return nil
}

func (f *fakeKV) put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = []byte(value)
}

func (f *fakeKV) raw(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key]
}

func (f *fakeKV) totalSets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.sets {
		n += c
	}
	return n
}

func (f *fakeKV) setCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets[key]
}

func (f *fakeKV) failSetOn(key string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet[key] = err
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func threePets(now time.Time) []pets.Pet {
	mk := func(id, name string) pets.Pet {
		return pets.Pet{
			ID: id, Name: name, Breed: "Aspin", Age: "2 years", Gender: "Male",
			Description: "test pet", Status: pets.StatusAvailable, CreatedAt: now, UpdatedAt: now,
		}
	}
	return []pets.Pet{mk("1", "Smiley"), mk("2", "Owen"), mk("3", "Vicky")}
}

// newTestStore arma un store con reloj fijo, ids secuenciales y seed de 3 mascotas, ya cargado.
func newTestStore(t testing.TB, backend *fakeKV, policy SubmissionPolicy) *Store {
	t.Helper()
	s := NewStore(Options{KV: backend, Policy: policy, Seed: threePets})
	s.now = func() time.Time { return testNow }
	var seq int
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return s
}

func validApplication(petID string) applications.Input {
	return applications.Input{
		PetID: petID,
		Applicant: applications.Applicant{
			FullName:         "Ana Reyes",
			Email:            "ana@example.com",
			Phone:            "555-123-4567",
			Address:          "12 Mabini St",
			Birthdate:        "1994-03-02",
			Occupation:       "Nurse",
			HouseholdMembers: "2 adults",
			HomeType:         "apartment",
			HoursAlone:       "3",
			PetExperience:    "Grew up with dogs",
			WhyAdopt:         "Looking for a companion",
			Agreement:        true,
		},
	}
}

func validPetInput(name string) pets.Input {
	return pets.Input{Name: name, Breed: "Puspin", Age: "1 year", Gender: "Female", Description: "shy but sweet"}
}

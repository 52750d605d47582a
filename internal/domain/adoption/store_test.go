package adoption

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/validation"
	"pet-adoption/internal/ports/kv"
)

// assertStatusCoupling: adopted <=> existe una solicitud aprobada para la mascota.
func assertStatusCoupling(t *testing.T, s *Store) {
	t.Helper()
	approved := map[string]int{}
	for _, a := range s.Applications() {
		if a.Status == applications.StatusApproved {
			approved[a.PetID]++
		}
	}
	for _, p := range s.Pets() {
		if (p.Status == pets.StatusAdopted) != (approved[p.ID] > 0) {
			t.Fatalf("pet %s status %s but %d approved applications", p.ID, p.Status, approved[p.ID])
		}
		if approved[p.ID] > 1 {
			t.Fatalf("pet %s has %d approved applications", p.ID, approved[p.ID])
		}
	}
}

func ids(list []pets.Pet) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestLoad_SeedsWhenBackendEmpty_WithoutWriting(t *testing.T) {
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(s.Pets())); diff != "" {
		t.Fatalf("seed mismatch:\n%s", diff)
	}
	if backend.totalSets() != 0 {
		t.Fatalf("load must not write, got %d sets", backend.totalSets())
	}
	if s.Err() != nil {
		t.Fatalf("clean load should not set error flag: %v", s.Err())
	}
}

func TestLoad_FallbackOnReadAndDecodeErrors(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeyPets, `{not json`)
	backend.failGet[kv.KeyApplications] = errors.New("disk unavailable")
	backend.put(kv.KeySavedPets, `["2"]`)

	s := newTestStore(t, backend, "")

	if len(s.Pets()) != 3 {
		t.Fatalf("invalid pets payload should fall back to seed, got %d pets", len(s.Pets()))
	}
	if len(s.Applications()) != 0 {
		t.Fatalf("failed applications read should fall back to empty")
	}
	if diff := cmp.Diff([]string{"2"}, s.SavedPetIDs()); diff != "" {
		t.Fatalf("healthy keys must still load:\n%s", diff)
	}

	err := s.Err()
	if !errors.Is(err, ErrStorageRead) {
		t.Fatalf("expected ErrStorageRead flag, got %v", err)
	}
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StorageError in %v", err)
	}
}

func TestLoad_EmptyStoredPetsIsRespected(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeyPets, `[]`)

	s := newTestStore(t, backend, "")
	if len(s.Pets()) != 0 {
		t.Fatalf("stored empty list must not be replaced by seed")
	}
}

func TestLoad_NullPetsPayloadSeeds(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeyPets, ` null `)
	backend.put(kv.KeySavedPets, `null`)

	s := newTestStore(t, backend, "")
	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(s.Pets())); diff != "" {
		t.Fatalf("null pets payload should load the seed:\n%s", diff)
	}
	if len(s.SavedPetIDs()) != 0 {
		t.Fatalf("null saved payload should load as empty set")
	}
	if s.Err() != nil {
		t.Fatalf("null payload is not a read error: %v", s.Err())
	}
}

func TestLoad_CorrectsStatusFromApplications(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeyPets, `[
		{"id":"1","name":"Smiley","status":"adopted"},
		{"id":"2","name":"Owen","status":"available"},
		{"id":"3","name":"Vicky","status":"pending"}
	]`)
	backend.put(kv.KeyApplications, `[
		{"id":"a1","petId":"2","status":"approved"}
	]`)

	s := newTestStore(t, backend, "")

	want := map[string]pets.Status{
		"1": pets.StatusAvailable,
		"2": pets.StatusAdopted,
		"3": pets.StatusAvailable,
	}
	for id, status := range want {
		if p, _ := s.PetByID(id); p.Status != status {
			t.Fatalf("pet %s: expected %s, got %s", id, status, p.Status)
		}
	}
	assertStatusCoupling(t, s)
	if backend.totalSets() != 0 {
		t.Fatalf("load must not write, got %d sets", backend.totalSets())
	}
}

func TestLoad_MarkPendingKeepsPendingWithOpenApplications(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeyPets, `[{"id":"1","name":"Smiley","status":"adopted"}]`)
	backend.put(kv.KeyApplications, `[{"id":"a1","petId":"1","status":"pending"}]`)

	s := newTestStore(t, backend, PolicyMarkPending)
	if p, _ := s.PetByID("1"); p.Status != pets.StatusPending {
		t.Fatalf("expected pending, got %s", p.Status)
	}
}

func TestLoad_UnreadableApplicationsKeepStoredStatus(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeyPets, `[{"id":"1","name":"Smiley","status":"adopted"}]`)
	backend.failGet[kv.KeyApplications] = errors.New("disk unavailable")

	s := newTestStore(t, backend, "")
	if p, _ := s.PetByID("1"); p.Status != pets.StatusAdopted {
		t.Fatalf("status must not be corrected without applications, got %s", p.Status)
	}
}

func TestLoad_PrunesStaleAndDuplicateIDs(t *testing.T) {
	backend := newFakeKV()
	backend.put(kv.KeySavedPets, `["1", "99", "1", 3]`)
	backend.put(kv.KeyViewedPets, `["42", "2"]`)

	s := newTestStore(t, backend, "")

	if diff := cmp.Diff([]string{"1", "3"}, s.SavedPetIDs()); diff != "" {
		t.Fatalf("saved mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2"}, s.ViewedPetIDs()); diff != "" {
		t.Fatalf("viewed mismatch:\n%s", diff)
	}
}

func TestLoad_IsRerunnable(t *testing.T) {
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	if _, err := s.AddPet(context.Background(), validPetInput("Rex")); err != nil {
		t.Fatalf("AddPet error: %v", err)
	}
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if len(s.Pets()) != 4 {
		t.Fatalf("refresh should read back persisted pets, got %d", len(s.Pets()))
	}
}

func TestAddPet_PersistsAndAssignsAvailable(t *testing.T) {
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	p, err := s.AddPet(context.Background(), validPetInput(" Mochi "))
	if err != nil {
		t.Fatalf("AddPet error: %v", err)
	}
	if p.ID != "id-1" || p.Status != pets.StatusAvailable || p.Name != "Mochi" || !p.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected pet: %+v", p)
	}

	stored, err := pets.Decode(backend.raw(kv.KeyPets))
	if err != nil {
		t.Fatalf("stored payload not decodable: %v", err)
	}
	if diff := cmp.Diff(s.Pets(), stored, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("backend and memory diverge:\n%s", diff)
	}
}

func TestUpdatePet(t *testing.T) {
	s := newTestStore(t, newFakeKV(), "")
	name := "Smiles"

	p, err := s.UpdatePet(context.Background(), "1", pets.Patch{Name: &name})
	if err != nil {
		t.Fatalf("UpdatePet error: %v", err)
	}
	if p.Name != "Smiles" || p.Breed != "Aspin" {
		t.Fatalf("unexpected updated pet: %+v", p)
	}

	if _, err := s.UpdatePet(context.Background(), "nope", pets.Patch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	empty := " "
	if _, err := s.UpdatePet(context.Background(), "1", pets.Patch{Name: &empty}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// Seed de 3 mascotas; aprobar una solicitud adopta la mascota y bloquea una segunda aprobación.
func TestApproval_AdoptsPetAndBlocksSecondApproval(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newFakeKV(), "")

	first, err := s.SubmitApplication(ctx, validApplication("2"))
	if err != nil {
		t.Fatalf("SubmitApplication error: %v", err)
	}
	if first.Status != applications.StatusPending || first.PetName != "Owen" {
		t.Fatalf("unexpected application: %+v", first)
	}
	if p, _ := s.PetByID("2"); p.Status != pets.StatusAvailable {
		t.Fatalf("approval-only policy must not touch pet on submit, got %s", p.Status)
	}

	approved, err := s.SetApplicationStatus(ctx, first.ID, applications.StatusApproved)
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if approved.ReviewedDate == nil || !approved.ReviewedDate.Equal(testNow) {
		t.Fatalf("reviewedDate must be set on approval")
	}
	if p, _ := s.PetByID("2"); p.Status != pets.StatusAdopted {
		t.Fatalf("expected pet 2 adopted, got %s", p.Status)
	}

	second, err := s.SubmitApplication(ctx, validApplication("2"))
	if err != nil {
		t.Fatalf("second SubmitApplication error: %v", err)
	}
	if _, err := s.ApproveApplication(ctx, second.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	assertStatusCoupling(t, s)
}

func TestSetApplicationStatus_TerminalAndUnknown(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newFakeKV(), "")

	app, _ := s.SubmitApplication(ctx, validApplication("1"))
	if _, err := s.RejectApplication(ctx, app.ID); err != nil {
		t.Fatalf("reject error: %v", err)
	}
	if p, _ := s.PetByID("1"); p.Status != pets.StatusAvailable {
		t.Fatalf("reject has no pet side effect under approval-only, got %s", p.Status)
	}

	if _, err := s.ApproveApplication(ctx, app.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("approving a rejected application must fail, got %v", err)
	}
	if _, err := s.SetApplicationStatus(ctx, app.ID, applications.StatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("moving back to pending must fail, got %v", err)
	}
	if _, err := s.ApproveApplication(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	assertStatusCoupling(t, s)
}

func TestSubmitApplication_UnknownPet(t *testing.T) {
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	if _, err := s.SubmitApplication(context.Background(), validApplication("404")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if backend.totalSets() != 0 {
		t.Fatalf("no write expected")
	}
}

// Formulario con fullName vacío: error por campo y ninguna escritura al backend.
func TestSubmitApplication_ValidationBeforeAnyWrite(t *testing.T) {
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	in := validApplication("1")
	in.Applicant.FullName = ""

	_, err := s.SubmitApplication(context.Background(), in)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, ok := validation.FieldsOf(err)["fullName"]; !ok {
		t.Fatalf("expected fullName field error, got %v", validation.FieldsOf(err))
	}
	if backend.totalSets() != 0 {
		t.Fatalf("validation failure must not write, got %d sets", backend.totalSets())
	}
	if len(s.Applications()) != 0 {
		t.Fatalf("no application should be stored")
	}
}

func TestMarkPendingPolicy_SubmitAndReject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newFakeKV(), PolicyMarkPending)

	a1, _ := s.SubmitApplication(ctx, validApplication("3"))
	a2, _ := s.SubmitApplication(ctx, validApplication("3"))
	if p, _ := s.PetByID("3"); p.Status != pets.StatusPending {
		t.Fatalf("mark-pending policy should set pending, got %s", p.Status)
	}

	if _, err := s.RejectApplication(ctx, a1.ID); err != nil {
		t.Fatalf("reject error: %v", err)
	}
	if p, _ := s.PetByID("3"); p.Status != pets.StatusPending {
		t.Fatalf("another application is still pending, pet must stay pending, got %s", p.Status)
	}

	if _, err := s.RejectApplication(ctx, a2.ID); err != nil {
		t.Fatalf("reject error: %v", err)
	}
	if p, _ := s.PetByID("3"); p.Status != pets.StatusAvailable {
		t.Fatalf("last pending rejected, pet must be available, got %s", p.Status)
	}
	assertStatusCoupling(t, s)
}

func TestApprove_MissingPetStillApproves(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newFakeKV(), "")

	app, _ := s.SubmitApplication(ctx, validApplication("2"))
	if err := s.DeletePet(ctx, "2"); err != nil {
		t.Fatalf("DeletePet error: %v", err)
	}
	if len(s.ApplicationsForPet("2")) != 1 {
		t.Fatalf("applications must survive pet deletion")
	}

	got, err := s.ApproveApplication(ctx, app.ID)
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if got.Status != applications.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}
}

// Guardar la 1, borrarla: ni SavedPets ni el set la contienen.
func TestDeletePet_CascadesSavedAndViewed(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	if saved, err := s.ToggleSavedPet(ctx, "1"); err != nil || !saved {
		t.Fatalf("toggle: saved=%v err=%v", saved, err)
	}
	if err := s.MarkPetViewed(ctx, "1"); err != nil {
		t.Fatalf("MarkPetViewed error: %v", err)
	}
	if err := s.DeletePet(ctx, "1"); err != nil {
		t.Fatalf("DeletePet error: %v", err)
	}

	if len(s.SavedPets()) != 0 || s.IsSaved("1") || s.IsViewed("1") {
		t.Fatalf("deleted pet must leave saved/viewed sets")
	}
	stored, _ := backend.Get(ctx, kv.KeySavedPets)
	if string(stored) != "[]" {
		t.Fatalf("saved set not persisted after cascade: %s", stored)
	}
	if err := s.DeletePet(ctx, "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestToggleSavedPet_TwiceRestoresSet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newFakeKV(), "")
	_, _ = s.ToggleSavedPet(ctx, "3")
	before := s.SavedPetIDs()

	for i := 0; i < 2; i++ {
		if _, err := s.ToggleSavedPet(ctx, "2"); err != nil {
			t.Fatalf("toggle error: %v", err)
		}
	}
	if diff := cmp.Diff(before, s.SavedPetIDs()); diff != "" {
		t.Fatalf("toggle twice must restore set:\n%s", diff)
	}

	if _, err := s.ToggleSavedPet(ctx, "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown pet, got %v", err)
	}
}

func TestMarkPetViewed_Idempotent(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	_ = s.MarkPetViewed(ctx, "2")
	once := s.ViewedPetIDs()
	_ = s.MarkPetViewed(ctx, "2")

	if diff := cmp.Diff(once, s.ViewedPetIDs()); diff != "" {
		t.Fatalf("second mark changed the set:\n%s", diff)
	}
	if backend.setCount(kv.KeyViewedPets) != 1 {
		t.Fatalf("second mark must not write, got %d writes", backend.setCount(kv.KeyViewedPets))
	}
}

// Guardar 1, ver 1 y 2, reset: queda {1}.
func TestResetViewedPets_KeepsSaved(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newFakeKV(), "")

	_, _ = s.ToggleSavedPet(ctx, "1")
	_ = s.MarkPetViewed(ctx, "1")
	_ = s.MarkPetViewed(ctx, "2")

	if err := s.ResetViewedPets(ctx); err != nil {
		t.Fatalf("ResetViewedPets error: %v", err)
	}
	if diff := cmp.Diff([]string{"1"}, s.ViewedPetIDs()); diff != "" {
		t.Fatalf("viewed after reset:\n%s", diff)
	}
}

// Falla el set de pets en AddPet: la lista visible queda como antes y el error es StorageWriteError.
func TestAddPet_WriteFailureRollsBack(t *testing.T) {
	backend := newFakeKV()
	s := newTestStore(t, backend, "")
	before := s.AvailablePets()

	backend.failSetOn(kv.KeyPets, errors.New("quota exceeded"))
	_, err := s.AddPet(context.Background(), validPetInput("Ghost"))

	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Key != kv.KeyPets || se.Op != "set" {
		t.Fatalf("unexpected storage error: %#v", err)
	}
	if diff := cmp.Diff(before, s.AvailablePets()); diff != "" {
		t.Fatalf("available pets changed after failed write:\n%s", diff)
	}
}

func TestMultiKeyWriteFailure_RestoresWrittenKeys(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	app, _ := s.SubmitApplication(ctx, validApplication("1"))
	appsBefore := append([]byte(nil), backend.raw(kv.KeyApplications)...)

	// applications se escribe primero y pets falla: applications tiene que volver atrás.
	backend.failSetOn(kv.KeyPets, errors.New("io timeout"))
	if _, err := s.ApproveApplication(ctx, app.ID); !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}

	if string(backend.raw(kv.KeyApplications)) != string(appsBefore) {
		t.Fatalf("applications key was not restored:\n got %s\nwant %s", backend.raw(kv.KeyApplications), appsBefore)
	}
	if got, _ := s.ApplicationByID(app.ID); got.Status != applications.StatusPending {
		t.Fatalf("in-memory application must stay pending, got %s", got.Status)
	}
	assertStatusCoupling(t, s)

	// Con el backend sano la misma operación funciona.
	backend.failSetOn(kv.KeyPets, nil)
	if _, err := s.ApproveApplication(ctx, app.ID); err != nil {
		t.Fatalf("retry error: %v", err)
	}
	assertStatusCoupling(t, s)
}

func TestRollback_RemovesKeyThatDidNotExist(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	// saved no existe todavía; la escritura de viewed falla después de escribir saved.
	backend.failSetOn(kv.KeyViewedPets, errors.New("boom"))
	if _, err := s.Save(ctx, 0); !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
	if backend.raw(kv.KeySavedPets) != nil {
		t.Fatalf("saved key should be removed again, got %s", backend.raw(kv.KeySavedPets))
	}
	if s.IsSaved("1") {
		t.Fatalf("memory must not show the rolled back save")
	}
}

func TestConcurrentMutations_NoLostUpdates(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AddPet(ctx, validPetInput(fmt.Sprintf("pet-%d", i))); err != nil {
				t.Errorf("AddPet error: %v", err)
			}
		}()
	}
	wg.Wait()

	var wg2 sync.WaitGroup
	for _, p := range s.Pets() {
		p := p
		wg2.Add(1)
		go func() {
			defer wg2.Done()
			if _, err := s.ToggleSavedPet(ctx, p.ID); err != nil {
				t.Errorf("toggle error: %v", err)
			}
		}()
	}
	wg2.Wait()

	if len(s.Pets()) != 23 || len(s.SavedPetIDs()) != 23 {
		t.Fatalf("lost updates: pets=%d saved=%d", len(s.Pets()), len(s.SavedPetIDs()))
	}

	if err := s.Refresh(ctx); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if len(s.Pets()) != 23 || len(s.SavedPetIDs()) != 23 {
		t.Fatalf("persisted state lost updates: pets=%d saved=%d", len(s.Pets()), len(s.SavedPetIDs()))
	}
}

func TestClearAllData_ResetsToSeed(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")

	_, _ = s.AddPet(ctx, validPetInput("Rex"))
	_, _ = s.ToggleSavedPet(ctx, "1")
	_, _ = s.SubmitApplication(ctx, validApplication("1"))

	if err := s.ClearAllData(ctx); err != nil {
		t.Fatalf("ClearAllData error: %v", err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(s.Pets())); diff != "" {
		t.Fatalf("expected seed after clear:\n%s", diff)
	}
	if len(s.Applications()) != 0 || len(s.SavedPetIDs()) != 0 {
		t.Fatalf("clear must drop applications and saved set")
	}
	for _, key := range kv.AllKeys {
		if backend.raw(key) != nil {
			t.Fatalf("key %s still stored", key)
		}
	}
}

func TestClearAllData_RemoveFailureStillReloads(t *testing.T) {
	ctx := context.Background()
	backend := newFakeKV()
	s := newTestStore(t, backend, "")
	_, _ = s.AddPet(ctx, validPetInput("Rex"))

	backend.failRemove[kv.KeyApplications] = errors.New("locked")
	err := s.ClearAllData(ctx)
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
	if len(s.Pets()) != 3 {
		t.Fatalf("store should reload after clear, got %d pets", len(s.Pets()))
	}
}

func TestTeardown_ClosesStore(t *testing.T) {
	s := newTestStore(t, newFakeKV(), "")
	s.Teardown()

	if len(s.Pets()) != 0 {
		t.Fatalf("teardown must drop state")
	}
	if _, err := s.AddPet(context.Background(), validPetInput("Rex")); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := s.Load(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on Load, got %v", err)
	}
}

func TestParseSubmissionPolicy(t *testing.T) {
	if p, err := ParseSubmissionPolicy(""); err != nil || p != PolicyApprovalOnly {
		t.Fatalf("empty should default to approval-only, got %q %v", p, err)
	}
	if p, err := ParseSubmissionPolicy("Mark-Pending"); err != nil || p != PolicyMarkPending {
		t.Fatalf("unexpected %q %v", p, err)
	}
	if _, err := ParseSubmissionPolicy("always"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveMutation_CountsByResult(t *testing.T) {
	r := New()

	r.ObserveMutation("add_pet", time.Now(), nil)
	r.ObserveMutation("add_pet", time.Now(), errors.New("boom"))
	r.ObserveMutation("add_pet", time.Now(), nil)

	if got := testutil.ToFloat64(r.mutations.WithLabelValues("add_pet", "ok")); got != 2 {
		t.Fatalf("expected 2 ok mutations, got %v", got)
	}
	if got := testutil.ToFloat64(r.mutations.WithLabelValues("add_pet", "error")); got != 1 {
		t.Fatalf("expected 1 failed mutation, got %v", got)
	}
}

func TestRecorder_SetPetCounts_ResetsPreviousLabels(t *testing.T) {
	r := New()

	r.SetPetCounts(map[string]int{"available": 3, "adopted": 1})
	r.SetPetCounts(map[string]int{"available": 2})

	if got := testutil.ToFloat64(r.pets.WithLabelValues("available")); got != 2 {
		t.Fatalf("expected available=2, got %v", got)
	}
	if n := testutil.CollectAndCount(r.pets); n != 1 {
		t.Fatalf("expected 1 series after reset, got %d", n)
	}
}

func TestRecorder_Handler_ServesMetrics(t *testing.T) {
	r := New()
	r.LoadFallback()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "adoption_store_load_fallbacks_total 1") {
		t.Fatalf("expected load fallback counter in output, got:\n%s", body)
	}
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	r.ObserveMutation("x", time.Now(), nil)
	r.SetPetCounts(map[string]int{"available": 1})
	r.LoadFallback()
}

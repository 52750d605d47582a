package memory

import (
	"context"
	"errors"
	"testing"
)

func TestKVStore_GetMissing_ReturnsNilNil(t *testing.T) {
	s := NewKVStore()

	v, err := s.Get(context.Background(), "pets")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil value, got %q", v)
	}
}

func TestKVStore_SetGetRemove(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	buf := []byte(`["1"]`)
	if err := s.Set(ctx, "savedPets", buf); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	buf[2] = '9' // no debe afectar lo guardado

	v, err := s.Get(ctx, "savedPets")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(v) != `["1"]` {
		t.Fatalf("expected stored copy, got %q", v)
	}

	if err := s.Remove(ctx, "savedPets"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if err := s.Remove(ctx, "savedPets"); err != nil {
		t.Fatalf("Remove should be idempotent, got %v", err)
	}
	v, _ = s.Get(ctx, "savedPets")
	if v != nil {
		t.Fatalf("expected nil after remove, got %q", v)
	}
}

func TestKVStore_EmptyKey(t *testing.T) {
	s := NewKVStore()
	if err := s.Set(context.Background(), " ", []byte("x")); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption/internal/ports/kv"
)

var (
	ErrEmptyKey = errors.New("key required")
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

// NewKVStore es el backend por defecto (modo dev): se pierde al reiniciar.
func NewKVStore() kv.Store {
	return &kvStore{
		byKey: make(map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copia: el caller puede reusar el slice
	s.byKey[key] = append([]byte{}, value...)
	return nil
}

func (s *kvStore) Remove(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}

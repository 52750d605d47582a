// Package remote implementa kv.Store contra un document store HTTP.
//
// Contrato esperado del servidor:
//
//	GET    /kv/{key}  -> 200 {"key": "...", "value": "<json>"} | 404
//	PUT    /kv/{key}  <- {"value": "<json>"}
//	DELETE /kv/{key}  -> 2xx | 404
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/ports/kv"
)

type document struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

type KVStore struct {
	client *httpclient.Client
}

var _ kv.Store = (*KVStore)(nil)

func NewKVStore(client *httpclient.Client) *KVStore {
	return &KVStore{client: client}
}

func keyPath(key string) string {
	return "/kv/" + url.PathEscape(key)
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := s.client.GetJSON(ctx, keyPath(key), &doc)
	if httpclient.IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("remote get[%s]: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.PutJSON(ctx, keyPath(key), document{Value: string(value)}); err != nil {
		return fmt.Errorf("remote set[%s]: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	err := s.client.Delete(ctx, keyPath(key))
	if err != nil && !httpclient.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("remote remove[%s]: %w", key, err)
	}
	return nil
}

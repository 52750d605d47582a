package adoption

import (
	"errors"
	"fmt"

	"pet-adoption/internal/domain/validation"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStorageRead       = errors.New("storage read failed")
	ErrStorageWrite      = errors.New("storage write failed")
	ErrClosed            = errors.New("store closed")

	// ErrValidation es el mismo sentinel que validation.ErrInvalid,
	// así errors.Is funciona con los errores de pets/applications.
	ErrValidation = validation.ErrInvalid
)

// StorageError envuelve una falla del backend con la operación y la key.
// errors.Is(err, ErrStorageRead) para get/decode, ErrStorageWrite para set/remove.
type StorageError struct {
	Op  string // get | decode | set | remove
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrStorageRead:
		return e.Op == opGet || e.Op == opDecode
	case ErrStorageWrite:
		return e.Op == opSet || e.Op == opRemove
	}
	return false
}

const (
	opGet    = "get"
	opDecode = "decode"
	opSet    = "set"
	opRemove = "remove"
)

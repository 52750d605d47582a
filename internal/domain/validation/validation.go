// Package validation modela errores de input por campo (formularios de mascota y solicitud).
package validation

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalid = errors.New("validation failed")

// Error lleva un mensaje por campo. errors.Is(err, ErrInvalid) == true.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ErrInvalid.Error() + ": " + strings.Join(keys, ", ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Collector acumula fallas; Err() devuelve nil si no hubo ninguna.
type Collector struct {
	fields map[string]string
}

func (c *Collector) Add(field, msg string) {
	if c.fields == nil {
		c.fields = map[string]string{}
	}
	if _, exists := c.fields[field]; exists {
		return // nos quedamos con el primer mensaje
	}
	c.fields[field] = msg
}

// Required agrega msg si value está vacío (ignorando espacios).
func (c *Collector) Required(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		c.Add(field, msg)
		return false
	}
	return true
}

func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}

// FieldsOf extrae los mensajes por campo si err es un *Error.
func FieldsOf(err error) map[string]string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

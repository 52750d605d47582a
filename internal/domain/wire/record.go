// Package wire tiene los helpers tolerantes que usan los codecs de pets y applications
// para leer los blobs JSON guardados por las distintas versiones de la app.
package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record es un objeto JSON crudo; cada campo se interpreta recién al leerlo.
type Record map[string]json.RawMessage

// Records parsea un array JSON de objetos. Solo falla si el payload no es un array;
// los elementos que no son objetos se descartan y se cuentan en skipped.
func Records(raw []byte) (records []Record, skipped int, err error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, fmt.Errorf("payload is not a json array: %w", err)
	}

	records = make([]Record, 0, len(items))
	for _, item := range items {
		var r Record
		if err := json.Unmarshal(item, &r); err != nil || r == nil {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped, nil
}

// String acepta strings y números; cualquier otra cosa => "".
func (r Record) String(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// Bool acepta true/false y los strings "true", "yes", "si", "1".
func (r Record) Bool(key string) bool {
	raw, ok := r[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(r.String(key))) {
	case "true", "yes", "si", "sí", "1":
		return true
	}
	return false
}

// Strings acepta un array de strings o un string separado por comas.
func (r Record) Strings(key string) []string {
	raw, ok := r[key]
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return compact(list)
	}
	return compact(strings.Split(r.String(key), ","))
}

// Time interpreta ISO-8601 (RFC3339, con o sin fracción, o solo fecha) y epoch millis.
func (r Record) Time(key string) (time.Time, bool) {
	raw, ok := r[key]
	if !ok {
		return time.Time{}, false
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return time.UnixMilli(ms).UTC(), true
	}
	return ParseTime(r.String(key))
}

// TimeOr es Time con default.
func (r Record) TimeOr(key string, def time.Time) time.Time {
	if t, ok := r.Time(key); ok {
		return t
	}
	return def
}

// Raw devuelve el valor sin interpretar (nil si no está).
func (r Record) Raw(key string) json.RawMessage {
	return r[key]
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatTime es el inverso de ParseTime: RFC3339 con nanos, en UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Int parsea enteros guardados como número o string.
func (r Record) Int(key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(r.String(key)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

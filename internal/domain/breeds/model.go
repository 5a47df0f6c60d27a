package breeds

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Campos del objeto de TheCatAPI que usamos.
const (
	FieldName         = "name"
	FieldOrigin       = "origin"
	FieldTemperament  = "temperament"
	FieldLifeSpan     = "life_span"
	FieldWeight       = "weight"
	FieldImperial     = "imperial"
	FieldDescription  = "description"
	FieldWikipediaURL = "wikipedia_url"
)

var ErrNotObject = errors.New("breed entry is not a json object")

// Record es un objeto de raza tal como lo entrega upstream.
// Guarda el JSON original (para devolver "raw" sin reordenar keys) y una vista decodificada
// para leer campos opcionales.
type Record struct {
	raw    json.RawMessage
	fields map[string]any
}

// Catalog es la lista completa de razas de un fetch, en el orden de la respuesta.
type Catalog []Record

// NewRecord decodifica un objeto JSON de raza.
func NewRecord(raw []byte) (Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{}, ErrNotObject
	}

	fields, err := decodeFields(trimmed)
	if err != nil {
		return Record{}, fmt.Errorf("decode breed: %w", err)
	}

	cp := make(json.RawMessage, len(trimmed))
	copy(cp, trimmed)
	return Record{raw: cp, fields: fields}, nil
}

// RecordFromMap arma un Record desde un map (útil para fakes y tests).
func RecordFromMap(m map[string]any) Record {
	if m == nil {
		return Record{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return Record{fields: m}
	}
	r, err := NewRecord(b)
	if err != nil {
		return Record{fields: m}
	}
	return r
}

// IsEmpty indica que el record no tiene campos.
func (r Record) IsEmpty() bool {
	return len(r.fields) == 0
}

// Value devuelve el valor verbatim del campo; null cuenta como ausente.
func (r Record) Value(key string) (any, bool) {
	v, ok := r.fields[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Text devuelve el campo como string. Valores no-string se renderizan con su texto JSON.
func (r Record) Text(key string) (string, bool) {
	v, ok := r.Value(key)
	if !ok {
		return "", false
	}
	return stringify(v), true
}

func (r Record) Name() (string, bool)         { return r.Text(FieldName) }
func (r Record) Origin() (string, bool)       { return r.Text(FieldOrigin) }
func (r Record) Temperament() (string, bool)  { return r.Text(FieldTemperament) }
func (r Record) LifeSpan() (string, bool)     { return r.Text(FieldLifeSpan) }
func (r Record) Description() (string, bool)  { return r.Text(FieldDescription) }
func (r Record) WikipediaURL() (string, bool) { return r.Text(FieldWikipediaURL) }

// WeightImperial lee weight.imperial.
func (r Record) WeightImperial() (string, bool) {
	v, ok := r.Value(FieldWeight)
	if !ok {
		return "", false
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	imp, ok := nested[FieldImperial]
	if !ok || imp == nil {
		return "", false
	}
	return stringify(imp), true
}

// MarshalJSON devuelve el objeto tal cual vino de upstream.
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.fields)
}

// UnmarshalJSON permite decodificar un Record desde JSON (p.ej. en tests de handlers).
func (r *Record) UnmarshalJSON(b []byte) error {
	rec, err := NewRecord(b)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// decodeFields deja los números como json.Number para no perder precisión.
func decodeFields(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after breed object")
	}
	return fields, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

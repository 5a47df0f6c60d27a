package breeds

import "strings"

const unknown = "Unknown"

// Summary es la versión estructurada del resumen. Los valores son verbatim del record
// (null si faltan), sin reemplazar por "Unknown".
type Summary struct {
	Temperament any `json:"temperament"`
	Origin      any `json:"origin"`
	LifeSpan    any `json:"life_span"`
	Description any `json:"description"`
}

// Summarize arma el resumen multilínea para CLI y agentes.
func Summarize(r Record) string {
	if r.IsEmpty() {
		return "No breed data provided."
	}

	lines := []string{
		orUnknown(r.Name()),
		"Origin: " + orUnknown(r.Origin()),
		"Temperament: " + orUnknown(r.Temperament()),
		"Life span: " + orUnknown(r.LifeSpan()) + " years",
		"Weight (imperial): " + orUnknown(r.WeightImperial()) + " lbs",
	}

	if desc, _ := r.Description(); desc != "" {
		lines = append(lines, "", "Description:", strings.TrimSpace(desc))
	}

	if url, _ := r.WikipediaURL(); url != "" {
		lines = append(lines, "", "Learn more: "+url)
	}

	return strings.Join(lines, "\n")
}

// SummaryFields devuelve los campos del resumen para consumidores programáticos.
func SummaryFields(r Record) Summary {
	return Summary{
		Temperament: verbatim(r, FieldTemperament),
		Origin:      verbatim(r, FieldOrigin),
		LifeSpan:    verbatim(r, FieldLifeSpan),
		Description: verbatim(r, FieldDescription),
	}
}

func orUnknown(v string, ok bool) string {
	if !ok {
		return unknown
	}
	return v
}

func verbatim(r Record, key string) any {
	v, _ := r.Value(key)
	return v
}

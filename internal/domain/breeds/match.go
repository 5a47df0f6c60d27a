package breeds

import "strings"

// Find busca una raza por nombre sin distinguir mayúsculas.
// Primero intenta match exacto y, si no hay, el primer nombre que contenga la query
// (en orden del catálogo, sin scoring).
func Find(name string, catalog Catalog) (Record, bool) {
	desired := strings.ToLower(strings.TrimSpace(name))
	if desired == "" || len(catalog) == 0 {
		return Record{}, false
	}

	for _, b := range catalog {
		if lowerName(b) == desired {
			return b, true
		}
	}

	// fallback: substring
	for _, b := range catalog {
		if strings.Contains(lowerName(b), desired) {
			return b, true
		}
	}

	return Record{}, false
}

func lowerName(r Record) string {
	n, _ := r.Name()
	return strings.ToLower(n)
}

package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"cat-breed-info/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	r.Get("/breed", getBreedHandler(svc, log))
}

// breedResponse es la respuesta de GET /breed.
type breedResponse struct {
	Breed   any     `json:"breed"`
	Summary Summary `json:"summary"`
	Raw     Record  `json:"raw" swaggertype:"object"`
}

// errorResponse mantiene el formato {"detail": "..."} que esperan los clientes existentes.
type errorResponse struct {
	Detail string `json:"detail"`
}

// getBreedHandler godoc
// @Summary Obtener una raza de gato
// @Description Trae el catálogo de TheCatAPI y devuelve resumen + objeto crudo de la raza pedida. Match exacto sin mayúsculas primero; si no hay, el primer nombre que contenga el texto.
// @Tags breeds
// @Produce json
// @Param name query string true "Nombre de la raza (p.ej. Siamese). Se aceptan nombres parciales"
// @Success 200 {object} breedResponse
// @Failure 404 {object} errorResponse "Breed not found"
// @Failure 422 {object} errorResponse "falta name"
// @Failure 500 {object} errorResponse "fallo al traer el catálogo"
// @Router /breed [get]
func getBreedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if _, present := q["name"]; !present {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "name query parameter is required"})
			return
		}
		name := q.Get("name")

		b, ok, err := svc.Lookup(r.Context(), name)
		if err != nil {
			log.Error("breed lookup failed", map[string]any{
				"name":  name,
				"error": err.Error(),
			})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Breed not found"})
			return
		}

		breedName, _ := b.Value(FieldName)
		log.Debug("breed found", map[string]any{
			"query": strings.TrimSpace(name),
			"breed": breedName,
		})

		writeJSON(w, http.StatusOK, breedResponse{
			Breed:   breedName,
			Summary: SummaryFields(b),
			Raw:     b,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

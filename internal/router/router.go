package router

import (
	"encoding/json"
	"net/http"

	_ "cat-breed-info/docs"
	"cat-breed-info/internal/domain/breeds"
	"cat-breed-info/internal/middleware"
	"cat-breed-info/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const welcomeMessage = "Welcome to Cat Info API! Use /breed?name=Siamese"

type Options struct {
	// Requerido: el service ya trae el cache construido al arrancar.
	Service *breeds.Service

	// Opcional: nil => no loguea.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	// Abierto a cualquier origen, solo lectura.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", rootHandler)
	r.Get("/health", healthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	breeds.RegisterRoutes(r, opts.Service, log)

	return r
}

// rootHandler godoc
// @Summary Bienvenida
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func rootHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

// healthHandler godoc
// @Summary Healthcheck para monitores de uptime
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-breed-info/internal/app"
	"cat-breed-info/internal/config"
	"cat-breed-info/internal/router"
)

// @title Cat Info API
// @version 1.0
// @description Datos de razas de gato en tiempo real desde TheCatAPI.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := cfg.Logger(nil)

	svc, err := app.NewBreedService(cfg, log)
	if err != nil {
		log.Error("build breed service", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{Service: svc, Logger: log})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
		// el fetch upstream puede tardar hasta CATAPI_TIMEOUT
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.CatAPI.Timeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{
			"addr":         cfg.Addr(),
			"cache_policy": string(cfg.CachePolicy),
			"version":      app.Version,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", map[string]any{"error": err.Error()})
	}
	log.Info("server stopped", nil)
}

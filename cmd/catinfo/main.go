package main

import (
	"context"
	"os"

	"cat-breed-info/internal/app"
	"cat-breed-info/internal/cli"
	"cat-breed-info/internal/config"
	"cat-breed-info/internal/domain/breeds"
	"cat-breed-info/internal/platform/logger"
)

func main() {
	rn := cli.Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewService: func() (*breeds.Service, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			// stdout queda para el resumen; los logs van a stderr y por defecto solo warn+
			if _, set := os.LookupEnv("LOG_LEVEL"); !set {
				cfg.LogLevel = logger.Warn
			}
			return app.NewBreedService(cfg, cfg.Logger(os.Stderr))
		},
	}
	os.Exit(rn.Run(context.Background(), os.Args[1:]))
}

// Package app es la raíz de composición compartida por los binarios (api, catinfo, mcp).
package app

import (
	"cat-breed-info/internal/adapters/thecatapi"
	"cat-breed-info/internal/config"
	"cat-breed-info/internal/domain/breeds"
	"cat-breed-info/internal/platform/logger"
)

// Version se setea en build vía ldflags.
var Version = "1.0.0"

// NewBreedService arma client upstream -> cache -> service.
func NewBreedService(cfg config.Config, log logger.Logger) (*breeds.Service, error) {
	client, err := thecatapi.NewClient(cfg.CatAPI, log)
	if err != nil {
		return nil, err
	}
	cache := breeds.NewCache(client, cfg.CachePolicy)
	return breeds.NewService(cache), nil
}

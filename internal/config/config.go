package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"cat-breed-info/internal/adapters/thecatapi"
	"cat-breed-info/internal/domain/breeds"
	"cat-breed-info/internal/platform/logger"

	"github.com/joho/godotenv"
)

const DefaultAppName = "cat-breed-info"

type Config struct {
	Port string

	CatAPI      thecatapi.Config
	CachePolicy breeds.CachePolicy

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string
}

// Load lee .env (si existe, sin pisar variables ya seteadas) y luego el entorno:
// - PORT (default 8080)
// - CATAPI_BASE_URL (default https://api.thecatapi.com/v1)
// - CATAPI_TIMEOUT: duración Go ("10s") o segundos ("10"). Default 10s
// - CATAPI_API_KEY (opcional)
// - BREEDS_CACHE=none|memoize (default none)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup arma la config desde una función tipo os.LookupEnv (inyectable en tests).
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Port: get("PORT", "8080"),
		CatAPI: thecatapi.Config{
			BaseURL: get("CATAPI_BASE_URL", thecatapi.DefaultBaseURL),
			APIKey:  get("CATAPI_API_KEY", ""),
		},
		LogLevel:  logger.ParseLevel(get("LOG_LEVEL", "info")),
		LogFormat: logger.ParseFormat(get("LOG_FORMAT", "text")),
		AppName:   get("APP_NAME", DefaultAppName),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	timeout, err := parseTimeout(get("CATAPI_TIMEOUT", ""))
	if err != nil {
		return Config{}, err
	}
	cfg.CatAPI.Timeout = timeout

	policy, err := breeds.ParseCachePolicy(get("BREEDS_CACHE", string(breeds.CacheNone)))
	if err != nil {
		return Config{}, err
	}
	cfg.CachePolicy = policy

	return cfg, nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Logger construye el logger de la app con esta config. out nil = stdout.
func (c Config) Logger(out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
		Out:    out,
	})
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return thecatapi.DefaultTimeout, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("invalid CATAPI_TIMEOUT %q", s)
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid CATAPI_TIMEOUT %q", s)
	}
	return d, nil
}

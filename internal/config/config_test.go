package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cat-breed-info/internal/adapters/thecatapi"
	"cat-breed-info/internal/domain/breeds"
	"cat-breed-info/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, thecatapi.DefaultBaseURL, cfg.CatAPI.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.CatAPI.Timeout)
	assert.Empty(t, cfg.CatAPI.APIKey)
	assert.Equal(t, breeds.CacheNone, cfg.CachePolicy)
	assert.Equal(t, logger.Info, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
	assert.Equal(t, DefaultAppName, cfg.AppName)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":            "9090",
		"CATAPI_BASE_URL": "http://localhost:1234/v1",
		"CATAPI_TIMEOUT":  "2.5",
		"CATAPI_API_KEY":  " key ",
		"BREEDS_CACHE":    "memoize",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "json",
		"APP_NAME":        "catinfo",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "http://localhost:1234/v1", cfg.CatAPI.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.CatAPI.Timeout)
	assert.Equal(t, "key", cfg.CatAPI.APIKey)
	assert.Equal(t, breeds.CacheMemoize, cfg.CachePolicy)
	assert.Equal(t, logger.Debug, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.Equal(t, "catinfo", cfg.AppName)
}

func TestFromLookup_DurationTimeout(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{"CATAPI_TIMEOUT": "1500ms"}))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.CatAPI.Timeout)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := []map[string]string{
		{"PORT": "http"},
		{"CATAPI_TIMEOUT": "soon"},
		{"CATAPI_TIMEOUT": "-1"},
		{"CATAPI_TIMEOUT": "0s"},
		{"BREEDS_CACHE": "lru"},
	}
	for _, env := range cases {
		_, err := FromLookup(lookupFrom(env))
		assert.Error(t, err, "%v", env)
	}
}

func TestLoad_ReadsDotEnvWithoutOverridingEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BREEDS_CACHE=memoize\nPORT=7070\n"), 0o600))
	t.Chdir(dir)

	t.Setenv("PORT", "6060")
	// godotenv.Load setea BREEDS_CACHE en el proceso; t.Setenv restaura al terminar.
	t.Setenv("BREEDS_CACHE", "")
	require.NoError(t, os.Unsetenv("BREEDS_CACHE"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Port)
	assert.Equal(t, breeds.CacheMemoize, cfg.CachePolicy)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
}

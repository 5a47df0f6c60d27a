package thecatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cat-breed-info/internal/domain/breeds"
	"cat-breed-info/internal/platform/httpclient"
	"cat-breed-info/internal/platform/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL      = "https://api.thecatapi.com/v1"
	DefaultTimeout      = 10 * time.Second
	DefaultAPIKeyHeader = "x-api-key"

	breedsPath = "/breeds"
)

var tracer = otel.Tracer("cat-breed-info/thecatapi")

// Config del cliente TheCatAPI. Normalmente viene de env (ver internal/config).
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Opcional: upstream funciona sin key, pero con key hay mejor rate limit.
	APIKey       string
	APIKeyHeader string

	// Opcional: para tests.
	HTTP *httpclient.Client
}

// Client implementa breeds.Source contra GET <base>/breeds.
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
	log          logger.Logger
}

func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc := cfg.HTTP
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var err error
		if hc, err = httpclient.NewWithBaseURL(base, timeout); err != nil {
			return nil, err
		}
	} else if err := hc.SetBaseURL(base); err != nil {
		return nil, err
	}
	if hc.UserAgent == "" {
		hc.UserAgent = "cat-breed-info/1.0"
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = DefaultAPIKeyHeader
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		log:          log,
	}, nil
}

// FetchBreeds trae el catálogo completo. Cualquier fallo sale como *breeds.FetchError.
func (c *Client) FetchBreeds(ctx context.Context) (breeds.Catalog, error) {
	fetchID := uuid.NewString()
	log := c.log.With(map[string]any{"fetch_id": fetchID, "upstream": c.http.BaseURL + breedsPath})

	ctx, span := tracer.Start(ctx, "thecatapi.FetchBreeds",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("fetch.id", fetchID),
			attribute.String("http.url", c.http.BaseURL+breedsPath),
		),
	)
	defer span.End()

	start := time.Now()
	catalog, err := c.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("fetch breeds failed", map[string]any{
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil, err
	}

	span.SetAttributes(attribute.Int("breeds.count", len(catalog)))
	log.Debug("fetched breeds", map[string]any{
		"count":       len(catalog),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return catalog, nil
}

func (c *Client) fetch(ctx context.Context) (breeds.Catalog, error) {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{c.apiKeyHeader: c.apiKey}
	}

	raw, err := c.http.GetJSON(ctx, breedsPath, headers)
	if err != nil {
		return nil, &breeds.FetchError{Op: "get", Err: err}
	}

	catalog, err := decodeCatalog(raw)
	if err != nil {
		return nil, &breeds.FetchError{Op: "decode", Err: err}
	}
	return catalog, nil
}

// decodeCatalog exige que el top-level sea un array de objetos.
func decodeCatalog(raw []byte) (breeds.Catalog, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid json body")
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, breeds.ErrUnexpectedFormat
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", breeds.ErrUnexpectedFormat, err)
	}

	catalog := make(breeds.Catalog, 0, len(items))
	for i, item := range items {
		rec, err := breeds.NewRecord(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", breeds.ErrUnexpectedFormat, i, err)
		}
		catalog = append(catalog, rec)
	}
	return catalog, nil
}

var _ breeds.Source = (*Client)(nil)

package breeds

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachePolicy define si el catálogo se reutiliza entre llamadas.
type CachePolicy string

const (
	// CacheNone siempre va a upstream.
	CacheNone CachePolicy = "none"
	// CacheMemoize guarda el primer catálogo exitoso durante toda la vida del proceso.
	// Sin TTL ni invalidación: para refrescar hay que reiniciar.
	CacheMemoize CachePolicy = "memoize"
)

func ParseCachePolicy(s string) (CachePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return CacheNone, nil
	case "memoize", "memo", "process":
		return CacheMemoize, nil
	default:
		return "", fmt.Errorf("unknown cache policy %q (want none|memoize)", s)
	}
}

// Cache es el slot único del catálogo. Se construye al arrancar y se inyecta en el Service.
type Cache struct {
	source Source
	policy CachePolicy

	mu      sync.RWMutex
	catalog Catalog
	loaded  bool

	group singleflight.Group
}

func NewCache(source Source, policy CachePolicy) *Cache {
	if policy == "" {
		policy = CacheNone
	}
	return &Cache{
		source: source,
		policy: policy,
	}
}

func (c *Cache) Policy() CachePolicy { return c.policy }

// GetOrFetch devuelve el catálogo memoizado o lo trae de upstream.
// Un fetch fallido no se guarda.
func (c *Cache) GetOrFetch(ctx context.Context) (Catalog, error) {
	if c.policy != CacheMemoize {
		return c.source.FetchBreeds(ctx)
	}

	c.mu.RLock()
	if c.loaded {
		cat := c.catalog
		c.mu.RUnlock()
		return cat, nil
	}
	c.mu.RUnlock()

	// Varios requests concurrentes en frío comparten un solo fetch. El fetch compartido no
	// hereda la cancelación de quien lo inició; cada caller espera con su propio ctx.
	ch := c.group.DoChan("breeds", func() (any, error) {
		c.mu.RLock()
		if c.loaded {
			cat := c.catalog
			c.mu.RUnlock()
			return cat, nil
		}
		c.mu.RUnlock()

		cat, err := c.source.FetchBreeds(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.catalog = cat
		c.loaded = true
		c.mu.Unlock()
		return cat, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Catalog), nil
	}
}

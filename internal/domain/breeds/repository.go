package breeds

import "context"

// Source trae el catálogo completo desde upstream.
type Source interface {
	FetchBreeds(ctx context.Context) (Catalog, error)
}

// SourceFunc adapta una función a Source.
type SourceFunc func(ctx context.Context) (Catalog, error)

func (f SourceFunc) FetchBreeds(ctx context.Context) (Catalog, error) { return f(ctx) }

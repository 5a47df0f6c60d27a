package breeds

import "context"

type Service struct {
	cache *Cache
}

func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

// Lookup trae el catálogo y busca la raza. "No encontrada" no es error: ok=false.
func (s *Service) Lookup(ctx context.Context, name string) (Record, bool, error) {
	catalog, err := s.cache.GetOrFetch(ctx)
	if err != nil {
		return Record{}, false, err
	}
	r, ok := Find(name, catalog)
	return r, ok, nil
}

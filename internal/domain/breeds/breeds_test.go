package breeds

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

func sampleCatalog() Catalog {
	return Catalog{
		RecordFromMap(map[string]any{
			"name":        "Siamese",
			"origin":      "Thailand",
			"temperament": "Active",
			"life_span":   "8 - 12",
			"weight":      map[string]any{"imperial": "8 - 10"},
			"description": "Friendly cat",
		}),
		RecordFromMap(map[string]any{
			"name":        "Maine Coon",
			"origin":      "United States",
			"temperament": "Gentle",
			"life_span":   "10 - 13",
			"weight":      map[string]any{"imperial": "9 - 18"},
			"description": "Large cat",
		}),
	}
}

// fakeSource cuenta llamadas a "upstream".
type fakeSource struct {
	mu      sync.Mutex
	catalog Catalog
	errs    []error // se consumen en orden; nil = éxito
	calls   atomic.Int32
	gate    chan struct{}
}

func (f *fakeSource) FetchBreeds(ctx context.Context) (Catalog, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.catalog, nil
}

var errUpstream = errors.New("connection refused")

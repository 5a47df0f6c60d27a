package breeds

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedFormat = errors.New("unexpected API response format")
)

// FetchError envuelve cualquier fallo al traer el catálogo: transporte, status no-2xx,
// JSON inválido o forma inesperada. Nunca se reintenta.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "failed to fetch breeds"
	}
	return fmt.Sprintf("failed to fetch breeds: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reporta si err (o alguno envuelto) es un *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

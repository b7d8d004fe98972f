package embedding

import (
	"context"
	"errors"
)

// ErrUnavailable marks transient provider failures. Wrapped errors matching
// it are retried; anything else is returned as-is.
var ErrUnavailable = errors.New("embedding provider unavailable")

// Provider turns texts into dense vectors. Implementations must return one
// vector per input text, in order, and normalize them to unit length so
// cosine similarity reduces to a dot product.
type Provider interface {
	Name() string
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

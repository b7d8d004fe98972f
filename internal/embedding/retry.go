package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adelorme/cvmatch/internal/util"
)

// Retrying wraps a Provider with exponential backoff on transient failures.
// Only errors matching ErrUnavailable are retried; validation errors and
// context cancellation pass through immediately.
type Retrying struct {
	inner    Provider
	attempts int
	backoff  time.Duration
	logger   *zap.Logger
}

func WithRetry(inner Provider, attempts int, backoff time.Duration, logger *zap.Logger) *Retrying {
	if attempts < 1 {
		attempts = 1
	}
	return &Retrying{inner: inner, attempts: attempts, backoff: backoff, logger: logger}
}

func (r *Retrying) Name() string { return r.inner.Name() }

func (r *Retrying) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	var lastErr error

	delay := r.backoff
	for attempt := 1; attempt <= r.attempts; attempt++ {
		vectors, err := r.inner.Embed(ctx, texts)
		if err == nil {
			return vectors, nil
		}
		if !errors.Is(err, ErrUnavailable) {
			return nil, err
		}

		lastErr = err
		if attempt == r.attempts {
			break
		}

		r.logger.Warn("embedding attempt failed, retrying",
			zap.String("provider", r.inner.Name()),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		if err := util.WaitFor(ctx, delay); err != nil {
			return nil, err
		}
		delay *= 2
	}

	return nil, fmt.Errorf("embedding failed after %d attempts: %w", r.attempts, lastErr)
}

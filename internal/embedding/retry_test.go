package embedding

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
)

type flakyProvider struct {
	failures int
	calls    int
	err      error
}

func (p *flakyProvider) Name() string { return "flaky" }

func (p *flakyProvider) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, p.err
	}
	return [][]float64{{1, 0}}, nil
}

func TestRetryingRecoversFromTransientFailures(t *testing.T) {
	provider := &flakyProvider{failures: 2, err: fmt.Errorf("%w: 503", ErrUnavailable)}
	retrying := WithRetry(provider, 3, 0, zap.NewNop())

	vectors, err := retrying.Embed(context.Background(), []string{"texte"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 1 {
		t.Fatalf("expected 1 vector, got %d", len(vectors))
	}
	if provider.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", provider.calls)
	}
}

func TestRetryingGivesUpAfterMaxAttempts(t *testing.T) {
	provider := &flakyProvider{failures: 10, err: fmt.Errorf("%w: 503", ErrUnavailable)}
	retrying := WithRetry(provider, 3, 0, zap.NewNop())

	_, err := retrying.Embed(context.Background(), []string{"texte"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if provider.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", provider.calls)
	}
}

func TestRetryingDoesNotRetryPermanentErrors(t *testing.T) {
	provider := &flakyProvider{failures: 10, err: errors.New("bad input")}
	retrying := WithRetry(provider, 3, 0, zap.NewNop())

	_, err := retrying.Embed(context.Background(), []string{"texte"})
	if err == nil || errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected the permanent error unchanged, got %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected a single call, got %d", provider.calls)
	}
}

func TestRetryingHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &flakyProvider{failures: 10, err: fmt.Errorf("%w: 503", ErrUnavailable)}
	retrying := WithRetry(provider, 3, 1, zap.NewNop())

	_, err := retrying.Embed(ctx, []string{"texte"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected a single call before cancellation, got %d", provider.calls)
	}
}

package audio

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
)

// breakerProvider wraps a remote provider in a circuit breaker. Once the
// endpoint has failed a few times in a row the breaker opens and further
// requests fail immediately until the cool-off expires, so a dead endpoint
// does not stall every remaining card at full network timeout.
type breakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner in a circuit breaker
func NewBreakerProvider(inner Provider) Provider {
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &breakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// GenerateAudio runs the wrapped provider under the breaker
func (b *breakerProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.inner.GenerateAudio(ctx, text, outputFile)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return fmt.Errorf("%s is temporarily disabled after repeated failures: %w", b.inner.Name(), err)
	}
	return err
}

// Name returns the wrapped provider's name
func (b *breakerProvider) Name() string {
	return b.inner.Name()
}

// IsAvailable reports the wrapped provider's availability and breaker state
func (b *breakerProvider) IsAvailable() error {
	if b.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s circuit breaker is open", b.inner.Name())
	}
	return b.inner.IsAvailable()
}

package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// DefaultCallTimeout bounds individual store calls. The backing document
// service has no timeout handling of its own, so an unresponsive backend
// must surface as ErrStoreUnavailable here rather than hanging callers.
const DefaultCallTimeout = 15 * time.Second

// BreakerStore wraps a Store with a circuit breaker and a per-call timeout.
// Infrastructure failures are translated to the shared ErrStoreUnavailable
// kind; ErrNotFound passes through untouched and does not trip the breaker.
type BreakerStore struct {
	inner   Store
	breaker *gobreaker.CircuitBreaker[any]
	timeout time.Duration
}

// NewBreakerStore wraps inner with circuit breaking. A zero timeout falls
// back to DefaultCallTimeout.
func NewBreakerStore(inner Store, timeout time.Duration) *BreakerStore {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	settings := gobreaker.Settings{
		Name:    "docstore",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// Missing documents are a domain outcome, not an outage.
			return err == nil || errors.Is(err, ErrNotFound)
		},
	}
	return &BreakerStore{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
		timeout: timeout,
	}
}

func (s *BreakerStore) execute(ctx context.Context, op func(ctx context.Context) (any, error)) (any, error) {
	result, err := s.breaker.Execute(func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return op(callCtx)
	})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func translate(err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", sharedDomain.ErrStoreUnavailable, err)
}

func (s *BreakerStore) Get(ctx context.Context, collection, id string) (Document, error) {
	result, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return s.inner.Get(ctx, collection, id)
	})
	if err != nil {
		return Document{}, err
	}
	return result.(Document), nil
}

func (s *BreakerStore) List(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	result, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return s.inner.List(ctx, collection, filters...)
	})
	if err != nil {
		return nil, err
	}
	return result.([]Document), nil
}

func (s *BreakerStore) Create(ctx context.Context, collection string, data []byte) (string, error) {
	result, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return s.inner.Create(ctx, collection, data)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *BreakerStore) Update(ctx context.Context, collection, id string, data []byte) error {
	_, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return nil, s.inner.Update(ctx, collection, id, data)
	})
	return err
}

func (s *BreakerStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return nil, s.inner.Delete(ctx, collection, id)
	})
	return err
}

func (s *BreakerStore) Close() error { return s.inner.Close() }

package docstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// failingStore always fails with a raw infrastructure error.
type failingStore struct {
	err error
}

func (s *failingStore) Get(ctx context.Context, collection, id string) (Document, error) {
	return Document{}, s.err
}

func (s *failingStore) List(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	return nil, s.err
}

func (s *failingStore) Create(ctx context.Context, collection string, data []byte) (string, error) {
	return "", s.err
}

func (s *failingStore) Update(ctx context.Context, collection, id string, data []byte) error {
	return s.err
}

func (s *failingStore) Delete(ctx context.Context, collection, id string) error {
	return s.err
}

func (s *failingStore) Close() error { return nil }

func TestBreakerStorePassesThroughSuccess(t *testing.T) {
	inner := NewMemoryStore()
	store := NewBreakerStore(inner, time.Second)
	ctx := context.Background()

	id, err := store.Create(ctx, "things", []byte(`{"name":"a"}`))
	require.NoError(t, err)

	doc, err := store.Get(ctx, "things", id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)

	docs, err := store.List(ctx, "things")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestBreakerStoreTranslatesInfrastructureFailures(t *testing.T) {
	store := NewBreakerStore(&failingStore{err: errors.New("connection refused")}, time.Second)

	_, err := store.List(context.Background(), "things")
	assert.ErrorIs(t, err, sharedDomain.ErrStoreUnavailable)
}

func TestBreakerStorePreservesNotFound(t *testing.T) {
	store := NewBreakerStore(NewMemoryStore(), time.Second)

	_, err := store.Get(context.Background(), "things", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, sharedDomain.ErrStoreUnavailable)
}

func TestBreakerStoreOpensAfterConsecutiveFailures(t *testing.T) {
	store := NewBreakerStore(&failingStore{err: errors.New("connection refused")}, time.Second)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := store.List(ctx, "things")
		require.Error(t, err)
	}

	// Once open, calls fail fast but still carry the unavailable kind.
	_, err := store.List(ctx, "things")
	assert.ErrorIs(t, err, sharedDomain.ErrStoreUnavailable)
}

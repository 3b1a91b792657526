package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/sangam/internal/catalog/infrastructure/persistence"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/docstore"
	"github.com/felixgeelhaar/sangam/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogPopulatesEmptyCollection(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := persistence.NewJourneyRepository(store)
	metrics := observability.NewInMemoryMetrics()
	handler := NewSeedCatalogHandler(repo, nil, nil, metrics)

	require.NoError(t, handler.Handle(context.Background(), SeedCatalogCommand{}))

	journeys, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, journeys, 9)
	assert.Equal(t, int64(9), metrics.GetCounter(observability.MetricJourneysSeeded))

	featured, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 4)
}

func TestSeedCatalogIsIdempotentOnNonEmptyCollection(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := persistence.NewJourneyRepository(store)
	handler := NewSeedCatalogHandler(repo, nil, nil, nil)

	require.NoError(t, handler.Handle(context.Background(), SeedCatalogCommand{}))
	require.NoError(t, handler.Handle(context.Background(), SeedCatalogCommand{}))

	journeys, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, journeys, 9)
}

func TestSeedCatalogAssignsStoreIdentifiers(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := persistence.NewJourneyRepository(store)
	handler := NewSeedCatalogHandler(repo, nil, nil, nil)

	require.NoError(t, handler.Handle(context.Background(), SeedCatalogCommand{}))

	journeys, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, j := range journeys {
		require.True(t, j.IsPersisted())
		assert.False(t, seen[j.ID()], "duplicate journey id %s", j.ID())
		seen[j.ID()] = true
	}
}

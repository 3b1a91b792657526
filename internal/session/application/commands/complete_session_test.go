package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/sangam/internal/session/infrastructure/persistence"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSessionCreatesStatsOnFirstCompletion(t *testing.T) {
	repo := persistence.NewStatsRepository(docstore.NewMemoryStore())
	handler := NewCompleteSessionHandler(repo, nil, nil, nil)

	err := handler.Handle(context.Background(), CompleteSessionCommand{
		UserID:          "u1",
		Practice:        "Chakra Healing",
		DurationMinutes: 20,
	})
	require.NoError(t, err)

	stats, err := repo.FindForUser(context.Background(), sharedDomain.NewUserID("u1"))
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.TotalSessions())
	assert.Equal(t, 20, stats.TotalMinutes())
	assert.Equal(t, "Chakra Healing", stats.LastPractice())
	assert.True(t, stats.IsPersisted())
}

func TestCompleteSessionAccumulates(t *testing.T) {
	repo := persistence.NewStatsRepository(docstore.NewMemoryStore())
	handler := NewCompleteSessionHandler(repo, nil, nil, nil)
	ctx := context.Background()

	require.NoError(t, handler.Handle(ctx, CompleteSessionCommand{UserID: "u1", Practice: "Chakra Healing", DurationMinutes: 20}))
	require.NoError(t, handler.Handle(ctx, CompleteSessionCommand{UserID: "u1", Practice: "Gita Reflections", DurationMinutes: 25}))

	stats, err := repo.FindForUser(ctx, sharedDomain.NewUserID("u1"))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions())
	assert.Equal(t, 45, stats.TotalMinutes())
	assert.Equal(t, "Gita Reflections", stats.LastPractice())
}

func TestCompleteSessionIsScopedPerUser(t *testing.T) {
	repo := persistence.NewStatsRepository(docstore.NewMemoryStore())
	handler := NewCompleteSessionHandler(repo, nil, nil, nil)
	ctx := context.Background()

	require.NoError(t, handler.Handle(ctx, CompleteSessionCommand{UserID: "u1", Practice: "Chakra Healing", DurationMinutes: 20}))
	require.NoError(t, handler.Handle(ctx, CompleteSessionCommand{UserID: "u2", Practice: "Astral Travel", DurationMinutes: 30}))

	statsOne, err := repo.FindForUser(ctx, sharedDomain.NewUserID("u1"))
	require.NoError(t, err)
	assert.Equal(t, 20, statsOne.TotalMinutes())

	statsTwo, err := repo.FindForUser(ctx, sharedDomain.NewUserID("u2"))
	require.NoError(t, err)
	assert.Equal(t, 30, statsTwo.TotalMinutes())
}

func TestCompleteSessionValidation(t *testing.T) {
	repo := persistence.NewStatsRepository(docstore.NewMemoryStore())
	handler := NewCompleteSessionHandler(repo, nil, nil, nil)

	err := handler.Handle(context.Background(), CompleteSessionCommand{UserID: "u1", Practice: "Chakra Healing", DurationMinutes: 0})
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	err = handler.Handle(context.Background(), CompleteSessionCommand{UserID: "", Practice: "Chakra Healing", DurationMinutes: 20})
	assert.ErrorIs(t, err, sharedDomain.ErrAuthRequired)
}

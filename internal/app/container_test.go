package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	catalogCommands "github.com/felixgeelhaar/sangam/internal/catalog/application/commands"
	"github.com/felixgeelhaar/sangam/internal/catalog/application/queries"
	"github.com/felixgeelhaar/sangam/internal/identity"
	scheduleCommands "github.com/felixgeelhaar/sangam/internal/schedule/application/commands"
	scheduleQueries "github.com/felixgeelhaar/sangam/internal/schedule/application/queries"
	"github.com/felixgeelhaar/sangam/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:               "test",
		StoreDriver:          "memory",
		StoreCallTimeout:     5 * time.Second,
		CacheStalenessWindow: time.Minute,
		UserID:               "test-user",
		SeedCatalog:          true,
	}
}

func TestContainerWiresMemoryStack(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(ctx, testConfig(), nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, c.Close()) }()

	require.NoError(t, c.SeedCatalog.Handle(ctx, catalogCommands.SeedCatalogCommand{}))

	journeys, err := c.ListJourneys.Handle(ctx, queries.ListJourneysQuery{})
	require.NoError(t, err)
	assert.Len(t, journeys, 9)

	userID, err := c.Identity.CurrentUserID(ctx)
	require.NoError(t, err)

	result, err := c.ScheduleSync.SubmitAdd(ctx, scheduleCommands.AddScheduleItemCommand{
		UserID:   userID.String(),
		Day:      "Monday",
		Time:     "7:00 AM",
		Practice: "Chakra Healing",
		Duration: 20,
	})
	require.NoError(t, err)
	c.ScheduleSync.Wait()

	items, err := c.ListSchedule.Handle(ctx, scheduleQueries.ListScheduleQuery{UserID: userID.String()})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, result.Item.ID(), items[0].ID)
}

func TestOpenIdentitySelectsProvider(t *testing.T) {
	logger := slog.Default()

	cfg := testConfig()
	provider := openIdentity(cfg, logger)
	_, ok := provider.(*identity.StaticProvider)
	assert.True(t, ok, "without OAuth settings the static provider is used")

	cfg.OAuthTokenURL = "https://auth.example.com/token"
	cfg.OAuthClientID = "sangam"
	cfg.OAuthClientSecret = "secret"
	provider = openIdentity(cfg, logger)
	_, ok = provider.(*identity.OAuthProvider)
	assert.True(t, ok, "with full OAuth settings the oauth provider is used")

	// Partial OAuth settings are not considered configured; the static
	// fallback keeps the CLI usable.
	cfg.OAuthClientSecret = ""
	provider = openIdentity(cfg, logger)
	_, ok = provider.(*identity.StaticProvider)
	assert.True(t, ok)
}

func TestContainerHealthChecks(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(ctx, testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	status, results := c.Health.RunAll(ctx)
	assert.Equal(t, "up", string(status))
	assert.Contains(t, results, "docstore")
}

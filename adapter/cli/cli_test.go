package cli

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	internalApp "github.com/felixgeelhaar/sangam/internal/app"
	catalogQueries "github.com/felixgeelhaar/sangam/internal/catalog/application/queries"
	"github.com/felixgeelhaar/sangam/internal/guide"
	"github.com/felixgeelhaar/sangam/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestApp creates an in-memory application container for CLI tests.
func setupTestApp(t *testing.T) (*internalApp.Container, func()) {
	t.Helper()

	cfg := &config.Config{
		AppEnv:               "test",
		StoreDriver:          "memory",
		StoreCallTimeout:     5 * time.Second,
		CacheStalenessWindow: time.Minute,
		UserID:               "test-user",
	}

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	container, err := internalApp.NewContainer(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	container.Guide = guide.New(guide.WithTypingDelay(0))

	cleanup := func() {
		container.ScheduleSync.Wait()
		_ = container.Close()
	}
	return container, cleanup
}

func TestSeedCmd_SeedsCatalogOnce(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	SetApp(app)
	defer SetApp(nil)

	ctx := context.Background()
	seedCmd.SetContext(ctx)
	require.NoError(t, seedCmd.RunE(seedCmd, nil))

	journeys, err := app.ListJourneys.Handle(ctx, catalogQueries.ListJourneysQuery{})
	require.NoError(t, err)
	assert.Len(t, journeys, 9)

	// Seeding again is a no-op.
	require.NoError(t, seedCmd.RunE(seedCmd, nil))
	journeys, err = app.ListJourneys.Handle(ctx, catalogQueries.ListJourneysQuery{})
	require.NoError(t, err)
	assert.Len(t, journeys, 9)
}

func TestJourneyListCmd_Filters(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	SetApp(app)
	defer SetApp(nil)

	ctx := context.Background()
	seedCmd.SetContext(ctx)
	require.NoError(t, seedCmd.RunE(seedCmd, nil))

	journeySearch = ""
	journeyCategory = "energy"
	journeyListCmd.SetContext(ctx)
	require.NoError(t, journeyListCmd.RunE(journeyListCmd, nil))

	journeySearch = "krishna"
	journeyCategory = ""
	require.NoError(t, journeyListCmd.RunE(journeyListCmd, nil))
}

func TestJourneyShowCmd_UnknownTitle(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	SetApp(app)
	defer SetApp(nil)

	journeyShowCmd.SetContext(context.Background())
	require.NoError(t, journeyShowCmd.RunE(journeyShowCmd, []string{"No", "Such", "Journey"}))
}

func TestStatsCmd_EmptyStats(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	SetApp(app)
	defer SetApp(nil)

	statsCmd.SetContext(context.Background())
	require.NoError(t, statsCmd.RunE(statsCmd, nil))
}

func TestGuideCmd_OneShotQuestion(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	SetApp(app)
	defer SetApp(nil)

	guideLanguage = ""
	guideCmd.SetContext(context.Background())
	require.NoError(t, guideCmd.RunE(guideCmd, []string{"what", "is", "karma?"}))

	transcript := app.Guide.Transcript()
	require.Len(t, transcript, 2)
	assert.Contains(t, transcript[1].Text, "every action has a consequence")
}

func TestLibraryCmds(t *testing.T) {
	ctx := context.Background()

	storyCategory = "Puranas"
	storiesCmd.SetContext(ctx)
	require.NoError(t, storiesCmd.RunE(storiesCmd, nil))

	factSearch = ""
	factsCmd.SetContext(ctx)
	require.NoError(t, factsCmd.RunE(factsCmd, nil))

	quizDifficulty = "hard"
	quizzesCmd.SetContext(ctx)
	require.NoError(t, quizzesCmd.RunE(quizzesCmd, nil))

	timelineCmd.SetContext(ctx)
	require.NoError(t, timelineCmd.RunE(timelineCmd, nil))
}

func TestHealthCmd(t *testing.T) {
	app, cleanup := setupTestApp(t)
	defer cleanup()

	SetApp(app)
	defer SetApp(nil)

	healthCmd.SetContext(context.Background())
	require.NoError(t, healthCmd.RunE(healthCmd, nil))
}

func TestCommands_NoApp(t *testing.T) {
	SetApp(nil)

	ctx := context.Background()
	seedCmd.SetContext(ctx)
	require.NoError(t, seedCmd.RunE(seedCmd, nil))

	journeyListCmd.SetContext(ctx)
	require.NoError(t, journeyListCmd.RunE(journeyListCmd, nil))
}

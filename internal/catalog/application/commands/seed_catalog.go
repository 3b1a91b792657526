// Package commands contains write operations for the journey catalog.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/sangam/internal/catalog/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// SeedCatalogCommand populates the journey collection with the default
// content set. Seeding only happens when the collection is empty, so the
// command is safe to run on every startup.
type SeedCatalogCommand struct{}

// CommandName returns the command name.
func (c SeedCatalogCommand) CommandName() string { return "catalog.seed" }

// SeedCatalogHandler handles SeedCatalogCommand.
type SeedCatalogHandler struct {
	repo      domain.Repository
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.Metrics
}

// NewSeedCatalogHandler creates a new handler.
func NewSeedCatalogHandler(repo domain.Repository, publisher eventbus.Publisher, logger *slog.Logger, metrics observability.Metrics) *SeedCatalogHandler {
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &SeedCatalogHandler{repo: repo, publisher: publisher, logger: logger, metrics: metrics}
}

// Handle seeds the catalog when it is empty.
func (h *SeedCatalogHandler) Handle(ctx context.Context, _ SeedCatalogCommand) error {
	count, err := h.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		h.logger.DebugContext(ctx, "catalog already seeded", "journeys", count)
		return nil
	}

	for _, seed := range defaultJourneys {
		journey, err := domain.NewJourney(
			seed.title,
			seed.description,
			seed.duration,
			seed.level,
			seed.category,
			seed.imageURL,
			seed.featured,
		)
		if err != nil {
			return fmt.Errorf("building seed journey %q: %w", seed.title, err)
		}
		if err := h.repo.Save(ctx, journey); err != nil {
			return fmt.Errorf("seeding journey %q: %w", seed.title, err)
		}
		journey.AddDomainEvent(domain.NewJourneyAdded(journey))
		eventbus.PublishDomainEvents(ctx, h.publisher, h.logger, journey)
	}

	h.metrics.Counter(observability.MetricJourneysSeeded, int64(len(defaultJourneys)))
	h.logger.InfoContext(ctx, "catalog seeded", "journeys", len(defaultJourneys))
	return nil
}

type journeySeed struct {
	title       string
	description string
	duration    int
	level       domain.Level
	category    domain.Category
	imageURL    string
	featured    bool
}

// defaultJourneys is the fixed sample content set loaded into an empty
// catalog.
var defaultJourneys = []journeySeed{
	{
		title:       "Chakra Healing",
		description: "Align and balance your seven chakras through guided visualization and energy work.",
		duration:    20,
		level:       domain.LevelAll,
		category:    domain.CategoryEnergy,
		imageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=500&q=80",
		featured:    true,
	},
	{
		title:       "Astral Travel",
		description: "Experience a guided journey beyond the physical realm into the astral plane.",
		duration:    30,
		level:       domain.LevelIntermediate,
		category:    domain.CategoryAdvanced,
		imageURL:    "https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=500&q=80",
		featured:    false,
	},
	{
		title:       "Gita Reflections",
		description: "Deep contemplation on key verses from the Bhagavad Gita for spiritual insight.",
		duration:    25,
		level:       domain.LevelAll,
		category:    domain.CategoryScripture,
		imageURL:    "https://images.unsplash.com/photo-1507608616759-54f48f0af0ee?w=500&q=80",
		featured:    true,
	},
	{
		title:       "Inner Peace Sanctuary",
		description: "Find refuge in a tranquil mental sanctuary cultivated through focused breathing and visualization.",
		duration:    15,
		level:       domain.LevelBeginner,
		category:    domain.CategoryBeginner,
		imageURL:    "https://images.unsplash.com/photo-1476611338391-6f395a0dd82e?w=500&q=80",
		featured:    false,
	},
	{
		title:       "Cosmic Connection",
		description: "Connect with universal consciousness and explore your place in the cosmic web of existence.",
		duration:    35,
		level:       domain.LevelAdvanced,
		category:    domain.CategoryAdvanced,
		imageURL:    "https://images.unsplash.com/photo-1534447677768-be436bb09401?w=500&q=80",
		featured:    true,
	},
	{
		title:       "Divine Love Meditation",
		description: "Open your heart to universal love and compassion through bhakti-inspired meditation.",
		duration:    20,
		level:       domain.LevelAll,
		category:    domain.CategoryDevotional,
		imageURL:    "https://images.unsplash.com/photo-1518002171953-a080ee817e1f?w=500&q=80",
		featured:    false,
	},
	{
		title:       "Sacred Sound Healing",
		description: "Harness the vibrational power of mantras and primordial sounds to harmonize your energy field.",
		duration:    25,
		level:       domain.LevelAll,
		category:    domain.CategoryEnergy,
		imageURL:    "https://images.unsplash.com/photo-1477346611705-65d1883cee1e?w=500&q=80",
		featured:    false,
	},
	{
		title:       "Krishna Consciousness",
		description: "Connect with the divine presence of Lord Krishna through devotional visualization.",
		duration:    30,
		level:       domain.LevelAll,
		category:    domain.CategoryDevotional,
		imageURL:    "https://images.unsplash.com/photo-1499002238440-d264edd596ec?w=500&q=80",
		featured:    true,
	},
	{
		title:       "Mindful Awareness",
		description: "Develop presence and clarity through simple but powerful mindfulness techniques.",
		duration:    10,
		level:       domain.LevelBeginner,
		category:    domain.CategoryBeginner,
		imageURL:    "https://images.unsplash.com/photo-1490730141103-6cac27aaab94?w=500&q=80",
		featured:    false,
	},
}

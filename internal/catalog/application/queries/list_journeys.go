// Package queries contains read operations for the journey catalog.
package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/sangam/internal/catalog/domain"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/querycache"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// CacheKeyJourneys caches the full catalog. The catalog is global content,
// not user-scoped, so the key carries no scope token.
const CacheKeyJourneys = "catalog.journeys"

// JourneyDTO is the read model for a journey.
type JourneyDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListJourneysQuery lists catalog journeys with optional filtering.
// Absent predicates match everything.
type ListJourneysQuery struct {
	Text        string
	Category    string
	MinDuration *int
	MaxDuration *int
}

// QueryName returns the query name.
func (q ListJourneysQuery) QueryName() string { return "catalog.list_journeys" }

// ListJourneysHandler handles ListJourneysQuery.
type ListJourneysHandler struct {
	repo    domain.Repository
	cache   *querycache.Cache
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewListJourneysHandler creates a new handler.
func NewListJourneysHandler(repo domain.Repository, cache *querycache.Cache, logger *slog.Logger, metrics observability.Metrics) *ListJourneysHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &ListJourneysHandler{repo: repo, cache: cache, logger: logger, metrics: metrics}
}

// Handle loads the catalog through the cache and applies the filter.
func (h *ListJourneysHandler) Handle(ctx context.Context, query ListJourneysQuery) ([]JourneyDTO, error) {
	journeys, err := h.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := domain.Filter(journeys, domain.FilterQuery{
		Text:        query.Text,
		Category:    domain.Category(query.Category),
		MinDuration: query.MinDuration,
		MaxDuration: query.MaxDuration,
	})

	h.metrics.Counter(observability.MetricJourneysListed, int64(len(filtered)))
	return toDTOs(filtered), nil
}

func (h *ListJourneysHandler) loadAll(ctx context.Context) ([]*domain.Journey, error) {
	if cached, ok, err := querycache.Get[[]JourneyDTO](ctx, h.cache, CacheKeyJourneys); err == nil && ok {
		h.metrics.Counter(observability.MetricCacheHits, 1, observability.T("key", CacheKeyJourneys))
		return fromDTOs(cached), nil
	}
	h.metrics.Counter(observability.MetricCacheMisses, 1, observability.T("key", CacheKeyJourneys))

	gen := h.cache.Generation(CacheKeyJourneys)
	journeys, err := h.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := querycache.Put(ctx, h.cache, CacheKeyJourneys, gen, toDTOs(journeys)); err != nil {
		h.logger.WarnContext(ctx, "failed to cache journey catalog", "error", err)
	}
	return journeys, nil
}

func toDTOs(journeys []*domain.Journey) []JourneyDTO {
	dtos := make([]JourneyDTO, 0, len(journeys))
	for _, j := range journeys {
		dtos = append(dtos, JourneyDTO{
			ID:          j.ID(),
			Title:       j.Title(),
			Description: j.Description(),
			Duration:    j.Duration(),
			Level:       string(j.Level()),
			Category:    string(j.Category()),
			ImageURL:    j.ImageURL(),
			Featured:    j.Featured(),
			CreatedAt:   j.CreatedAt(),
			UpdatedAt:   j.UpdatedAt(),
		})
	}
	return dtos
}

func fromDTOs(dtos []JourneyDTO) []*domain.Journey {
	journeys := make([]*domain.Journey, 0, len(dtos))
	for _, dto := range dtos {
		journeys = append(journeys, domain.RehydrateJourney(
			sharedDomain.RehydrateBaseEntity(dto.ID, dto.CreatedAt, dto.UpdatedAt),
			dto.Title,
			dto.Description,
			dto.Duration,
			domain.Level(dto.Level),
			domain.Category(dto.Category),
			dto.ImageURL,
			dto.Featured,
		))
	}
	return journeys
}

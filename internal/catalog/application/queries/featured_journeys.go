package queries

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/sangam/internal/catalog/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/querycache"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// CacheKeyFeaturedJourneys caches the featured subset of the catalog.
const CacheKeyFeaturedJourneys = "catalog.journeys.featured"

// ListFeaturedJourneysQuery lists journeys flagged as featured.
type ListFeaturedJourneysQuery struct{}

// QueryName returns the query name.
func (q ListFeaturedJourneysQuery) QueryName() string { return "catalog.list_featured_journeys" }

// ListFeaturedJourneysHandler handles ListFeaturedJourneysQuery.
type ListFeaturedJourneysHandler struct {
	repo    domain.Repository
	cache   *querycache.Cache
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewListFeaturedJourneysHandler creates a new handler.
func NewListFeaturedJourneysHandler(repo domain.Repository, cache *querycache.Cache, logger *slog.Logger, metrics observability.Metrics) *ListFeaturedJourneysHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &ListFeaturedJourneysHandler{repo: repo, cache: cache, logger: logger, metrics: metrics}
}

// Handle loads the featured journeys through the cache.
func (h *ListFeaturedJourneysHandler) Handle(ctx context.Context, _ ListFeaturedJourneysQuery) ([]JourneyDTO, error) {
	if cached, ok, err := querycache.Get[[]JourneyDTO](ctx, h.cache, CacheKeyFeaturedJourneys); err == nil && ok {
		h.metrics.Counter(observability.MetricCacheHits, 1, observability.T("key", CacheKeyFeaturedJourneys))
		return cached, nil
	}
	h.metrics.Counter(observability.MetricCacheMisses, 1, observability.T("key", CacheKeyFeaturedJourneys))

	gen := h.cache.Generation(CacheKeyFeaturedJourneys)
	journeys, err := h.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	dtos := toDTOs(journeys)
	if _, err := querycache.Put(ctx, h.cache, CacheKeyFeaturedJourneys, gen, dtos); err != nil {
		h.logger.WarnContext(ctx, "failed to cache featured journeys", "error", err)
	}
	return dtos, nil
}

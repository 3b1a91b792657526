// Package queries contains read operations for the practice schedule.
package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/sangam/internal/schedule/domain"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/querycache"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// CacheOperationList is the operation name for cached schedule lists.
// The full key is always scoped by user id via querycache.UserKey.
const CacheOperationList = "schedule.list"

// ScheduleItemDTO is the read model for a schedule item.
type ScheduleItemDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	Practice  string    `json:"practice"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListScheduleQuery lists all schedule items for a user.
type ListScheduleQuery struct {
	UserID string
}

// QueryName returns the query name.
func (q ListScheduleQuery) QueryName() string { return "schedule.list" }

// ListScheduleHandler handles ListScheduleQuery.
type ListScheduleHandler struct {
	repo    domain.Repository
	cache   *querycache.Cache
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewListScheduleHandler creates a new handler.
func NewListScheduleHandler(repo domain.Repository, cache *querycache.Cache, logger *slog.Logger, metrics observability.Metrics) *ListScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &ListScheduleHandler{repo: repo, cache: cache, logger: logger, metrics: metrics}
}

// Handle returns the user's schedule, served from cache when fresh.
func (h *ListScheduleHandler) Handle(ctx context.Context, query ListScheduleQuery) ([]ScheduleItemDTO, error) {
	userID := sharedDomain.NewUserID(query.UserID)
	if userID.IsEmpty() {
		return nil, fmt.Errorf("%w: listing a schedule needs a signed-in user", sharedDomain.ErrAuthRequired)
	}

	key := querycache.UserKey(CacheOperationList, query.UserID)
	if cached, ok, err := querycache.Get[[]ScheduleItemDTO](ctx, h.cache, key); err == nil && ok {
		h.metrics.Counter(observability.MetricCacheHits, 1, observability.T("key", CacheOperationList))
		return cached, nil
	}
	h.metrics.Counter(observability.MetricCacheMisses, 1, observability.T("key", CacheOperationList))

	return h.Refresh(ctx, query.UserID)
}

// Refresh fetches the schedule from the store and repopulates the cache,
// bypassing any cached value. The write is generation-guarded: if the key
// is invalidated while the fetch is in flight, the result is discarded.
func (h *ListScheduleHandler) Refresh(ctx context.Context, userID string) ([]ScheduleItemDTO, error) {
	key := querycache.UserKey(CacheOperationList, userID)
	gen := h.cache.Generation(key)

	items, err := h.repo.ListForUser(ctx, sharedDomain.NewUserID(userID))
	if err != nil {
		return nil, err
	}

	dtos := toDTOs(items)
	stored, err := querycache.Put(ctx, h.cache, key, gen, dtos)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to cache schedule", "error", err)
	} else if !stored {
		h.logger.DebugContext(ctx, "discarded stale schedule fetch", "key", key)
	}
	return dtos, nil
}

func toDTOs(items []*domain.ScheduleItem) []ScheduleItemDTO {
	dtos := make([]ScheduleItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ToDTO(item))
	}
	return dtos
}

// ToDTO converts a schedule item to its read model.
func ToDTO(item *domain.ScheduleItem) ScheduleItemDTO {
	return ScheduleItemDTO{
		ID:        item.ID(),
		UserID:    item.UserID().String(),
		Day:       string(item.Day()),
		Time:      string(item.Time()),
		Practice:  item.Practice(),
		Duration:  item.Duration(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}
}

// Package commands contains write operations for the practice schedule.
// Every successful mutation synchronously invalidates the owner's cached
// schedule list before returning, so a read issued after the mutation can
// never observe pre-mutation data.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/sangam/internal/schedule/domain"
	sharedApplication "github.com/felixgeelhaar/sangam/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/querycache"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// cacheOperationList mirrors the operation name the list query caches
// under.
const cacheOperationList = "schedule.list"

// AddScheduleItemCommand contains the data needed to add a practice to a
// user's schedule.
type AddScheduleItemCommand struct {
	UserID   string
	Day      string
	Time     string
	Practice string
	Duration int
}

// CommandName returns the command name.
func (c AddScheduleItemCommand) CommandName() string { return "schedule.add_item" }

// AddScheduleItemResult contains the persisted item including its
// store-assigned identifier.
type AddScheduleItemResult struct {
	Item *domain.ScheduleItem
}

// AddScheduleItemHandler handles the AddScheduleItemCommand.
type AddScheduleItemHandler struct {
	repo      domain.Repository
	cache     *querycache.Cache
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.Metrics
}

// NewAddScheduleItemHandler creates a new AddScheduleItemHandler.
func NewAddScheduleItemHandler(repo domain.Repository, cache *querycache.Cache, publisher eventbus.Publisher, logger *slog.Logger, metrics observability.Metrics) *AddScheduleItemHandler {
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &AddScheduleItemHandler{repo: repo, cache: cache, publisher: publisher, logger: logger, metrics: metrics}
}

// Handle executes the AddScheduleItemCommand. Two identical calls create
// two distinct records; retries must be deduplicated by the caller.
func (h *AddScheduleItemHandler) Handle(ctx context.Context, cmd AddScheduleItemCommand) (*AddScheduleItemResult, error) {
	userID := sharedDomain.NewUserID(cmd.UserID)

	item, err := domain.NewScheduleItem(userID, domain.Day(cmd.Day), domain.TimeSlot(cmd.Time), cmd.Practice, cmd.Duration)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	if err := invalidateScheduleList(ctx, h.cache, cmd.UserID); err != nil {
		return nil, err
	}

	item.AddDomainEvent(domain.NewScheduleItemCreated(item))
	sharedApplication.ApplyEventMetadata(item.DomainEvents(), sharedApplication.NewEventMetadata(userID))
	eventbus.PublishDomainEvents(ctx, h.publisher, h.logger, item)

	h.metrics.Counter(observability.MetricScheduleItemsCreated, 1)
	h.logger.InfoContext(ctx, "schedule item created",
		"item_id", item.ID(),
		"practice", item.Practice(),
		"day", item.Day(),
	)

	return &AddScheduleItemResult{Item: item}, nil
}

// invalidateScheduleList drops the owner's cached list. Invalidation is
// part of the mutation's success path: a failure surfaces as an error so
// callers never trust a cache that may still hold pre-mutation data.
func invalidateScheduleList(ctx context.Context, cache *querycache.Cache, userID string) error {
	key := querycache.UserKey(cacheOperationList, userID)
	if err := cache.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("%w: invalidating cached schedule: %v", sharedDomain.ErrStoreUnavailable, err)
	}
	return nil
}

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

// RemoveScheduleItemCommand removes an item from a user's schedule.
type RemoveScheduleItemCommand struct {
	ItemID string
	UserID string
}

// CommandName returns the command name.
func (c RemoveScheduleItemCommand) CommandName() string { return "schedule.remove_item" }

// RemoveScheduleItemHandler handles the RemoveScheduleItemCommand.
type RemoveScheduleItemHandler struct {
	repo      domain.Repository
	cache     *querycache.Cache
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.Metrics
}

// NewRemoveScheduleItemHandler creates a new RemoveScheduleItemHandler.
func NewRemoveScheduleItemHandler(repo domain.Repository, cache *querycache.Cache, publisher eventbus.Publisher, logger *slog.Logger, metrics observability.Metrics) *RemoveScheduleItemHandler {
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &RemoveScheduleItemHandler{repo: repo, cache: cache, publisher: publisher, logger: logger, metrics: metrics}
}

// Handle executes the RemoveScheduleItemCommand. Removing a record that
// is already gone fails with ErrNotFound; the caller surfaces a refresh
// prompt instead of silently succeeding.
func (h *RemoveScheduleItemHandler) Handle(ctx context.Context, cmd RemoveScheduleItemCommand) error {
	userID := sharedDomain.NewUserID(cmd.UserID)
	if userID.IsEmpty() {
		return fmt.Errorf("%w: removing a schedule item needs a signed-in user", sharedDomain.ErrAuthRequired)
	}

	item, err := h.repo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return err
	}
	if !item.UserID().Equals(userID) {
		return fmt.Errorf("%w: schedule item %s", sharedDomain.ErrNotFound, cmd.ItemID)
	}

	if err := h.repo.Delete(ctx, cmd.ItemID); err != nil {
		return err
	}

	if err := invalidateScheduleList(ctx, h.cache, cmd.UserID); err != nil {
		return err
	}

	event := domain.NewScheduleItemDeleted(cmd.ItemID)
	sharedApplication.ApplyEventMetadata([]sharedDomain.DomainEvent{event}, sharedApplication.NewEventMetadata(userID))
	item.ClearDomainEvents()
	item.AddDomainEvent(event)
	eventbus.PublishDomainEvents(ctx, h.publisher, h.logger, item)

	h.metrics.Counter(observability.MetricScheduleItemsDeleted, 1)
	h.logger.InfoContext(ctx, "schedule item deleted", "item_id", cmd.ItemID)

	return nil
}

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

// UpdateScheduleItemCommand replaces all mutable fields of an item.
type UpdateScheduleItemCommand struct {
	ItemID   string
	UserID   string
	Day      string
	Time     string
	Practice string
	Duration int
}

// CommandName returns the command name.
func (c UpdateScheduleItemCommand) CommandName() string { return "schedule.update_item" }

// UpdateScheduleItemHandler handles the UpdateScheduleItemCommand.
type UpdateScheduleItemHandler struct {
	repo      domain.Repository
	cache     *querycache.Cache
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.Metrics
}

// NewUpdateScheduleItemHandler creates a new UpdateScheduleItemHandler.
func NewUpdateScheduleItemHandler(repo domain.Repository, cache *querycache.Cache, publisher eventbus.Publisher, logger *slog.Logger, metrics observability.Metrics) *UpdateScheduleItemHandler {
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &UpdateScheduleItemHandler{repo: repo, cache: cache, publisher: publisher, logger: logger, metrics: metrics}
}

// Handle executes the UpdateScheduleItemCommand. The referenced item must
// still exist at call time; a concurrent delete surfaces as ErrNotFound.
func (h *UpdateScheduleItemHandler) Handle(ctx context.Context, cmd UpdateScheduleItemCommand) error {
	userID := sharedDomain.NewUserID(cmd.UserID)
	if userID.IsEmpty() {
		return fmt.Errorf("%w: updating a schedule needs a signed-in user", sharedDomain.ErrAuthRequired)
	}

	item, err := h.repo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return err
	}
	// An item owned by another user is reported as missing rather than
	// revealing its existence.
	if !item.UserID().Equals(userID) {
		return fmt.Errorf("%w: schedule item %s", sharedDomain.ErrNotFound, cmd.ItemID)
	}

	if err := item.Update(domain.Day(cmd.Day), domain.TimeSlot(cmd.Time), cmd.Practice, cmd.Duration); err != nil {
		return err
	}

	if err := h.repo.Update(ctx, item); err != nil {
		return err
	}

	if err := invalidateScheduleList(ctx, h.cache, cmd.UserID); err != nil {
		return err
	}

	sharedApplication.ApplyEventMetadata(item.DomainEvents(), sharedApplication.NewEventMetadata(userID))
	eventbus.PublishDomainEvents(ctx, h.publisher, h.logger, item)

	h.metrics.Counter(observability.MetricScheduleItemsUpdated, 1)
	h.logger.InfoContext(ctx, "schedule item updated", "item_id", item.ID())

	return nil
}

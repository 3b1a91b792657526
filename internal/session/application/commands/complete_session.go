// Package commands contains write operations for meditation sessions.
package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/sangam/internal/session/domain"
	sharedApplication "github.com/felixgeelhaar/sangam/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// CompleteSessionCommand records a finished meditation session in the
// user's stats.
type CompleteSessionCommand struct {
	UserID          string
	Practice        string
	DurationMinutes int
}

// CommandName returns the command name.
func (c CompleteSessionCommand) CommandName() string { return "session.complete" }

// CompleteSessionHandler handles the CompleteSessionCommand.
type CompleteSessionHandler struct {
	repo      domain.StatsRepository
	publisher eventbus.Publisher
	logger    *slog.Logger
	metrics   observability.Metrics
}

// NewCompleteSessionHandler creates a new CompleteSessionHandler.
func NewCompleteSessionHandler(repo domain.StatsRepository, publisher eventbus.Publisher, logger *slog.Logger, metrics observability.Metrics) *CompleteSessionHandler {
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &CompleteSessionHandler{repo: repo, publisher: publisher, logger: logger, metrics: metrics}
}

// Handle folds the session into the user's stats, creating the record on
// the first completion.
func (h *CompleteSessionHandler) Handle(ctx context.Context, cmd CompleteSessionCommand) error {
	userID := sharedDomain.NewUserID(cmd.UserID)

	stats, err := h.repo.FindForUser(ctx, userID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats, err = domain.NewUserStats(userID)
		if err != nil {
			return err
		}
	}

	if err := stats.RecordSession(cmd.Practice, cmd.DurationMinutes); err != nil {
		return err
	}

	if err := h.repo.Save(ctx, stats); err != nil {
		return err
	}

	stats.AddDomainEvent(domain.NewSessionCompleted(stats, cmd.Practice, cmd.DurationMinutes))
	sharedApplication.ApplyEventMetadata(stats.DomainEvents(), sharedApplication.NewEventMetadata(userID))
	eventbus.PublishDomainEvents(ctx, h.publisher, h.logger, stats)

	h.metrics.Counter(observability.MetricSessionsCompleted, 1)
	h.logger.InfoContext(ctx, "session completed",
		"practice", cmd.Practice,
		"minutes", cmd.DurationMinutes,
		"total_sessions", stats.TotalSessions(),
	)

	return nil
}

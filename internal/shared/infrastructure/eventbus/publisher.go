package eventbus

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// Publisher defines the interface for publishing events to a message broker.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// Envelope is the wire form of a domain event.
type Envelope struct {
	EventID       string          `json:"eventId"`
	AggregateID   string          `json:"aggregateId"`
	AggregateType string          `json:"aggregateType"`
	RoutingKey    string          `json:"routingKey"`
	OccurredAt    time.Time       `json:"occurredAt"`
	UserID        string          `json:"userId,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// PublishDomainEvents publishes all events raised by an aggregate and
// clears them. Publishing is best-effort: a broker failure is logged, not
// propagated, since events are advisory in this application.
func PublishDomainEvents(ctx context.Context, pub Publisher, logger *slog.Logger, aggregate domain.AggregateRoot) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, event := range aggregate.DomainEvents() {
		envelope := Envelope{
			EventID:       event.EventID().String(),
			AggregateID:   event.AggregateID(),
			AggregateType: event.AggregateType(),
			RoutingKey:    event.RoutingKey(),
			OccurredAt:    event.OccurredAt(),
			UserID:        event.Metadata().UserID.String(),
		}
		payload, err := json.Marshal(envelope)
		if err != nil {
			logger.Error("failed to marshal domain event",
				"routing_key", event.RoutingKey(),
				"error", err,
			)
			continue
		}
		if err := pub.Publish(ctx, event.RoutingKey(), payload); err != nil {
			logger.Error("failed to publish domain event",
				"routing_key", event.RoutingKey(),
				"event_id", envelope.EventID,
				"error", err,
			)
		}
	}
	aggregate.ClearDomainEvents()
}

// NoopPublisher is a no-op publisher for testing/development.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that does nothing.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger}
}

// Publish logs the message but doesn't actually publish.
func (p *NoopPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	p.logger.Debug("noop publish",
		"routing_key", routingKey,
		"size", len(payload),
	)
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error {
	return nil
}

package eventbus

import (
	"context"
	"log/slog"
	"sync"

	json "github.com/goccy/go-json"
)

// Handler consumes a decoded event envelope.
type Handler func(ctx context.Context, event Envelope)

// InProcessBus delivers events synchronously to registered handlers. It is
// the broker replacement for local mode (no RabbitMQ configured).
type InProcessBus struct {
	logger *slog.Logger

	mu       sync.Mutex
	handlers map[string][]Handler
}

// NewInProcessBus creates an empty in-process bus.
func NewInProcessBus(logger *slog.Logger) *InProcessBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessBus{
		logger:   logger,
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for an exact routing key.
func (b *InProcessBus) Subscribe(routingKey string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[routingKey] = append(b.handlers[routingKey], handler)
}

// Publish dispatches the payload to all handlers for the routing key. A
// malformed payload is logged and skipped, never propagated.
func (b *InProcessBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		b.logger.Error("failed to unmarshal event payload",
			"routing_key", routingKey,
			"error", err,
		)
		return nil
	}
	if envelope.RoutingKey == "" {
		envelope.RoutingKey = routingKey
	}

	b.mu.Lock()
	handlers := append([]Handler(nil), b.handlers[routingKey]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(ctx, envelope)
	}

	b.logger.Debug("event dispatched",
		"routing_key", routingKey,
		"handlers", len(handlers),
	)
	return nil
}

// Close is a no-op for the in-process bus.
func (b *InProcessBus) Close() error {
	return nil
}

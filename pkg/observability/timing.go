package observability

import (
	"context"
	"log/slog"
	"time"
)

// Timer tracks operation duration and reports it to logs and metrics.
type Timer struct {
	start     time.Time
	operation string
	logger    *slog.Logger
	metrics   Metrics
	tags      []Tag
}

// StartTimer begins timing an operation.
func StartTimer(operation string, logger *slog.Logger, metrics Metrics, tags ...Tag) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Timer{
		start:     time.Now(),
		operation: operation,
		logger:    logger,
		metrics:   metrics,
		tags:      tags,
	}
}

// Stop ends the timer and records the duration. If err is non-nil the
// operation is counted as a failure.
func (t *Timer) Stop(ctx context.Context, err error) time.Duration {
	duration := time.Since(t.start)

	t.metrics.Timing(MetricOperationDuration, duration, append(t.tags, T(OperationKey, t.operation))...)
	t.metrics.Counter(MetricOperationTotal, 1, append(t.tags, T(OperationKey, t.operation))...)

	if err != nil {
		t.metrics.Counter(MetricOperationErrors, 1, append(t.tags, T(OperationKey, t.operation))...)
		t.logger.ErrorContext(ctx, "operation failed",
			OperationKey, t.operation,
			DurationKey, duration.Milliseconds(),
			ErrorKey, err.Error(),
		)
	} else {
		t.logger.DebugContext(ctx, "operation completed",
			OperationKey, t.operation,
			DurationKey, duration.Milliseconds(),
		)
	}

	return duration
}

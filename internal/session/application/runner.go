// Package application drives meditation session playback.
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/sangam/internal/session/domain"
	"github.com/felixgeelhaar/sangam/pkg/observability"
)

// DefaultTickInterval is the wall-clock interval between timer ticks.
const DefaultTickInterval = time.Second

// TickFunc observes timer progress after each tick.
type TickFunc func(currentSeconds int, progressPercent float64)

// CompletedFunc runs once when the session finishes.
type CompletedFunc func(ctx context.Context) error

// Runner drives a playback timer with a recurring tick. The tick stops
// when the session completes or the context is cancelled; the ticker is
// always released, cancellation cleanup is not optional.
type Runner struct {
	timer       *domain.PlaybackTimer
	interval    time.Duration
	onTick      TickFunc
	onCompleted CompletedFunc
	logger      *slog.Logger
	metrics     observability.Metrics
}

// NewRunner creates a runner for the given timer.
func NewRunner(timer *domain.PlaybackTimer, interval time.Duration, onTick TickFunc, onCompleted CompletedFunc, logger *slog.Logger, metrics observability.Metrics) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &Runner{
		timer:       timer,
		interval:    interval,
		onTick:      onTick,
		onCompleted: onCompleted,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run plays the timer until completion or cancellation. On cancellation
// the timer pauses so a later Run resumes from the frozen elapsed time.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.timer.Play(); err != nil {
		return err
	}
	r.metrics.Counter(observability.MetricSessionsStarted, 1)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.timer.Pause()
			r.logger.DebugContext(ctx, "session playback cancelled",
				"practice", r.timer.Practice(),
				"elapsed", r.timer.CurrentTime(),
			)
			return ctx.Err()
		case <-ticker.C:
			completed := r.timer.Tick()
			if r.onTick != nil {
				r.onTick(r.timer.CurrentTime(), r.timer.ProgressPercent())
			}
			if completed {
				if r.onCompleted != nil {
					return r.onCompleted(ctx)
				}
				return nil
			}
		}
	}
}

package application

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/sangam/internal/session/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunsToCompletion(t *testing.T) {
	timer, err := domain.NewPlaybackTimer("Chakra Healing", 3)
	require.NoError(t, err)

	var ticks []int
	completed := false
	runner := NewRunner(timer, time.Millisecond,
		func(current int, progress float64) { ticks = append(ticks, current) },
		func(ctx context.Context) error { completed = true; return nil },
		nil, nil,
	)

	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, []int{1, 2, 3}, ticks)
	assert.True(t, completed)
	assert.Equal(t, domain.TimerCompleted, timer.State())
	assert.Equal(t, 100.0, timer.ProgressPercent())
}

func TestRunnerCancellationPausesAndReleasesTicker(t *testing.T) {
	timer, err := domain.NewPlaybackTimer("Astral Travel", 1000)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	progressed := make(chan struct{})
	var once bool
	runner := NewRunner(timer, time.Millisecond,
		func(current int, progress float64) {
			if !once {
				once = true
				close(progressed)
			}
		},
		nil, nil, nil,
	)

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	<-progressed
	cancel()

	err = <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.TimerPaused, timer.State())

	elapsed := timer.CurrentTime()
	assert.Greater(t, elapsed, 0)

	// Resuming continues from the frozen time.
	require.NoError(t, timer.Play())
	timer.Tick()
	assert.Equal(t, elapsed+1, timer.CurrentTime())
}

func TestRunnerRefusesCompletedTimer(t *testing.T) {
	timer, err := domain.NewPlaybackTimer("Chakra Healing", 1)
	require.NoError(t, err)
	require.NoError(t, timer.Play())
	timer.Tick()
	require.Equal(t, domain.TimerCompleted, timer.State())

	runner := NewRunner(timer, time.Millisecond, nil, nil, nil, nil)
	assert.Error(t, runner.Run(context.Background()))
}

package domain

import (
	"testing"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerCompletesAfterTotalDuration(t *testing.T) {
	timer, err := NewPlaybackTimer("Chakra Healing", 5)
	require.NoError(t, err)
	require.NoError(t, timer.Play())

	for i := 0; i < 4; i++ {
		assert.False(t, timer.Tick())
	}
	assert.True(t, timer.Tick(), "fifth tick should complete the session")

	assert.Equal(t, TimerCompleted, timer.State())
	assert.Equal(t, 5, timer.CurrentTime())
	assert.Equal(t, 100.0, timer.ProgressPercent())
}

func TestTickAfterCompletionIsNoOp(t *testing.T) {
	timer, err := NewPlaybackTimer("Chakra Healing", 5)
	require.NoError(t, err)
	require.NoError(t, timer.Play())
	for i := 0; i < 5; i++ {
		timer.Tick()
	}

	assert.False(t, timer.Tick())
	assert.Equal(t, 5, timer.CurrentTime())
	assert.Equal(t, TimerCompleted, timer.State())
}

func TestPauseFreezesAndResumeContinues(t *testing.T) {
	timer, err := NewPlaybackTimer("Chakra Healing", 5)
	require.NoError(t, err)
	require.NoError(t, timer.Play())

	timer.Tick()
	timer.Tick()
	timer.Pause()

	assert.Equal(t, TimerPaused, timer.State())
	assert.Equal(t, 2, timer.CurrentTime())

	// Ticks while paused change nothing.
	assert.False(t, timer.Tick())
	assert.Equal(t, 2, timer.CurrentTime())

	require.NoError(t, timer.Play())
	timer.Tick()
	assert.Equal(t, 3, timer.CurrentTime(), "resume must continue from the frozen time, not zero")
}

func TestTicksWhileStoppedAreNoOps(t *testing.T) {
	timer, err := NewPlaybackTimer("Chakra Healing", 5)
	require.NoError(t, err)

	assert.False(t, timer.Tick())
	assert.Equal(t, 0, timer.CurrentTime())
	assert.Equal(t, TimerStopped, timer.State())
}

func TestResetReturnsToStopped(t *testing.T) {
	timer, err := NewPlaybackTimer("Chakra Healing", 5)
	require.NoError(t, err)
	require.NoError(t, timer.Play())
	for i := 0; i < 5; i++ {
		timer.Tick()
	}
	require.Equal(t, TimerCompleted, timer.State())

	err = timer.Play()
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	timer.Reset()
	assert.Equal(t, TimerStopped, timer.State())
	assert.Equal(t, 0, timer.CurrentTime())
	assert.Equal(t, 0.0, timer.ProgressPercent())

	require.NoError(t, timer.Play())
	timer.Tick()
	assert.Equal(t, 1, timer.CurrentTime())
}

func TestProgressPercentIsClamped(t *testing.T) {
	timer, err := NewPlaybackTimer("Chakra Healing", 4)
	require.NoError(t, err)
	require.NoError(t, timer.Play())

	timer.Tick()
	assert.InDelta(t, 25.0, timer.ProgressPercent(), 0.001)
	for i := 0; i < 10; i++ {
		timer.Tick()
	}
	assert.Equal(t, 100.0, timer.ProgressPercent())
}

func TestNewPlaybackTimerValidation(t *testing.T) {
	_, err := NewPlaybackTimer("Chakra Healing", 0)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)
	_, err = NewPlaybackTimer("Chakra Healing", -10)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)
}

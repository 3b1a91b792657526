package domain

import (
	"fmt"
	"sync"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// TimerState is the playback state of a meditation session.
type TimerState string

const (
	TimerStopped   TimerState = "stopped"
	TimerPlaying   TimerState = "playing"
	TimerPaused    TimerState = "paused"
	TimerCompleted TimerState = "completed"
)

// PlaybackTimer tracks elapsed time for a meditation session. Elapsed
// time only grows while playing, is capped at the total duration, and
// freezes on pause. Once completed, no further ticking occurs until a
// reset.
type PlaybackTimer struct {
	mu       sync.Mutex
	state    TimerState
	current  int // seconds
	total    int // seconds
	practice string
}

// NewPlaybackTimer creates a stopped timer for a session of the given
// total duration in seconds.
func NewPlaybackTimer(practice string, totalSeconds int) (*PlaybackTimer, error) {
	if totalSeconds <= 0 {
		return nil, fmt.Errorf("%w: session duration must be positive, got %d", sharedDomain.ErrValidation, totalSeconds)
	}
	return &PlaybackTimer{
		state:    TimerStopped,
		total:    totalSeconds,
		practice: practice,
	}, nil
}

// State returns the current playback state.
func (t *PlaybackTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Practice returns the practice name this session plays.
func (t *PlaybackTimer) Practice() string { return t.practice }

// CurrentTime returns elapsed seconds.
func (t *PlaybackTimer) CurrentTime() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// TotalDuration returns the session length in seconds.
func (t *PlaybackTimer) TotalDuration() int { return t.total }

// ProgressPercent returns elapsed progress clamped to [0, 100].
func (t *PlaybackTimer) ProgressPercent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	percent := float64(t.current) / float64(t.total) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Play starts or resumes ticking. Resuming continues from the frozen
// elapsed time, never from zero.
func (t *PlaybackTimer) Play() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case TimerStopped, TimerPaused:
		t.state = TimerPlaying
		return nil
	case TimerPlaying:
		return nil
	default:
		return fmt.Errorf("%w: cannot play a completed session, reset first", sharedDomain.ErrValidation)
	}
}

// Pause freezes the elapsed time. Pausing while not playing is a no-op.
func (t *PlaybackTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TimerPlaying {
		t.state = TimerPaused
	}
}

// Tick advances elapsed time by one second while playing. Reaching the
// total duration transitions to completed; ticks in any other state are
// no-ops. Returns true when this tick completed the session.
func (t *PlaybackTimer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TimerPlaying {
		return false
	}
	t.current++
	if t.current >= t.total {
		t.current = t.total
		t.state = TimerCompleted
		return true
	}
	return false
}

// Reset returns the timer to stopped with zero elapsed time.
func (t *PlaybackTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = TimerStopped
	t.current = 0
}

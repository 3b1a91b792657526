package domain

import (
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// SessionCompleted is raised when a meditation session finishes.
type SessionCompleted struct {
	sharedDomain.BaseEvent
	Practice string
	Minutes  int
}

// NewSessionCompleted creates a new SessionCompleted event.
func NewSessionCompleted(stats *UserStats, practice string, minutes int) *SessionCompleted {
	return &SessionCompleted{
		BaseEvent: sharedDomain.NewBaseEvent(stats.ID(), "UserStats", "session.completed"),
		Practice:  practice,
		Minutes:   minutes,
	}
}

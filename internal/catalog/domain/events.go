package domain

import (
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// JourneyAdded is raised when a journey is added to the catalog.
type JourneyAdded struct {
	sharedDomain.BaseEvent
	Title    string
	Category Category
	Duration int
}

// NewJourneyAdded creates a new JourneyAdded event.
func NewJourneyAdded(journey *Journey) *JourneyAdded {
	return &JourneyAdded{
		BaseEvent: sharedDomain.NewBaseEvent(journey.ID(), "Journey", "catalog.journey.added"),
		Title:     journey.Title(),
		Category:  journey.Category(),
		Duration:  journey.Duration(),
	}
}

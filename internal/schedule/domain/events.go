package domain

import (
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// ScheduleItemCreated is raised when a user adds a practice to their
// schedule.
type ScheduleItemCreated struct {
	sharedDomain.BaseEvent
	Practice string
	Day      Day
	Time     TimeSlot
	Duration int
}

// NewScheduleItemCreated creates a new ScheduleItemCreated event.
func NewScheduleItemCreated(item *ScheduleItem) *ScheduleItemCreated {
	return &ScheduleItemCreated{
		BaseEvent: sharedDomain.NewBaseEvent(item.ID(), "ScheduleItem", "schedule.item.created"),
		Practice:  item.Practice(),
		Day:       item.Day(),
		Time:      item.Time(),
		Duration:  item.Duration(),
	}
}

// ScheduleItemUpdated is raised when an item's fields are replaced.
type ScheduleItemUpdated struct {
	sharedDomain.BaseEvent
	Practice string
	Day      Day
	Time     TimeSlot
	Duration int
}

// NewScheduleItemUpdated creates a new ScheduleItemUpdated event.
func NewScheduleItemUpdated(item *ScheduleItem) *ScheduleItemUpdated {
	return &ScheduleItemUpdated{
		BaseEvent: sharedDomain.NewBaseEvent(item.ID(), "ScheduleItem", "schedule.item.updated"),
		Practice:  item.Practice(),
		Day:       item.Day(),
		Time:      item.Time(),
		Duration:  item.Duration(),
	}
}

// ScheduleItemDeleted is raised when an item is removed.
type ScheduleItemDeleted struct {
	sharedDomain.BaseEvent
}

// NewScheduleItemDeleted creates a new ScheduleItemDeleted event.
func NewScheduleItemDeleted(itemID string) *ScheduleItemDeleted {
	return &ScheduleItemDeleted{
		BaseEvent: sharedDomain.NewBaseEvent(itemID, "ScheduleItem", "schedule.item.deleted"),
	}
}

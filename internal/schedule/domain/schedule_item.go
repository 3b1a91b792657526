package domain

import (
	"fmt"
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// Day is one of the seven weekday labels.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days lists the weekday labels in week order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid checks if the day is a known weekday label.
func (d Day) IsValid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// TimeSlot is a time-of-day label from the fixed half-hour grid, like
// "7:00 AM" or "6:30 PM".
type TimeSlot string

// timeSlotLayout is the display layout of a slot, e.g. "7:00 AM".
const timeSlotLayout = "3:04 PM"

// IsValid checks if the slot lies on the half-hour grid.
func (t TimeSlot) IsValid() bool {
	parsed, err := time.Parse(timeSlotLayout, string(t))
	if err != nil {
		return false
	}
	if parsed.Minute() != 0 && parsed.Minute() != 30 {
		return false
	}
	// Reject off-layout spellings like "07:00 AM".
	return parsed.Format(timeSlotLayout) == string(t)
}

// TimeSlots returns the full half-hour grid in day order, starting at
// 12:00 AM.
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, 48)
	for half := 0; half < 48; half++ {
		hour24 := half / 2
		minute := (half % 2) * 30
		period := "AM"
		if hour24 >= 12 {
			period = "PM"
		}
		hour := hour24 % 12
		if hour == 0 {
			hour = 12
		}
		slots = append(slots, TimeSlot(fmt.Sprintf("%d:%02d %s", hour, minute, period)))
	}
	return slots
}

// ScheduleItem pairs a practice (a journey referenced by display name)
// with a recurring day and time slot. Items belong to exactly one user;
// fields only change through the Update operation.
type ScheduleItem struct {
	sharedDomain.BaseAggregateRoot
	userID   sharedDomain.UserID
	day      Day
	time     TimeSlot
	practice string
	duration int // minutes, independent of the referenced journey
}

// NewScheduleItem creates an item for a user. The store assigns the
// identifier on creation.
func NewScheduleItem(userID sharedDomain.UserID, day Day, slot TimeSlot, practice string, duration int) (*ScheduleItem, error) {
	if userID.IsEmpty() {
		return nil, fmt.Errorf("%w: schedule items need an owner", sharedDomain.ErrAuthRequired)
	}
	if err := validateFields(day, slot, practice, duration); err != nil {
		return nil, err
	}

	// The created event is raised after persistence, once the store has
	// assigned an identifier for the event to reference.
	return &ScheduleItem{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		userID:            userID,
		day:               day,
		time:              slot,
		practice:          strings.TrimSpace(practice),
		duration:          duration,
	}, nil
}

// RehydrateScheduleItem recreates an item from persisted state.
func RehydrateScheduleItem(
	base sharedDomain.BaseEntity,
	userID sharedDomain.UserID,
	day Day,
	slot TimeSlot,
	practice string,
	duration int,
) *ScheduleItem {
	return &ScheduleItem{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(base),
		userID:            userID,
		day:               day,
		time:              slot,
		practice:          practice,
		duration:          duration,
	}
}

// Getters
func (s *ScheduleItem) UserID() sharedDomain.UserID { return s.userID }
func (s *ScheduleItem) Day() Day                    { return s.day }
func (s *ScheduleItem) Time() TimeSlot              { return s.time }
func (s *ScheduleItem) Practice() string            { return s.practice }
func (s *ScheduleItem) Duration() int               { return s.duration }

// Update replaces all mutable fields at once. This is a full replace,
// not a partial patch.
func (s *ScheduleItem) Update(day Day, slot TimeSlot, practice string, duration int) error {
	if err := validateFields(day, slot, practice, duration); err != nil {
		return err
	}

	s.day = day
	s.time = slot
	s.practice = strings.TrimSpace(practice)
	s.duration = duration
	s.Touch()

	s.AddDomainEvent(NewScheduleItemUpdated(s))

	return nil
}

func validateFields(day Day, slot TimeSlot, practice string, duration int) error {
	if strings.TrimSpace(practice) == "" {
		return fmt.Errorf("%w: practice name cannot be empty", sharedDomain.ErrValidation)
	}
	if !day.IsValid() {
		return fmt.Errorf("%w: unknown day %q", sharedDomain.ErrValidation, day)
	}
	if !slot.IsValid() {
		return fmt.Errorf("%w: time %q is not on the half-hour grid", sharedDomain.ErrValidation, slot)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", sharedDomain.ErrValidation, duration)
	}
	return nil
}

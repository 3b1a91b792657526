package domain

import (
	"fmt"
	"strings"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// Level labels the difficulty of a journey.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelAll          Level = "All Levels"
)

// IsValid checks if the level is a known label.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAll:
		return true
	default:
		return false
	}
}

// Category groups journeys by theme. CategoryAll is a filter wildcard and
// never stored on a record.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryBeginner   Category = "beginner"
	CategoryEnergy     Category = "energy"
	CategoryDevotional Category = "devotional"
	CategoryAdvanced   Category = "advanced"
	CategoryScripture  Category = "scripture"
)

// IsValid checks if the category may be stored on a journey.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBeginner, CategoryEnergy, CategoryDevotional, CategoryAdvanced, CategoryScripture:
		return true
	default:
		return false
	}
}

// Journey is a read-only content record describing a guided meditation
// session template. Journeys are created by the seeding process and never
// mutated by end users.
type Journey struct {
	sharedDomain.BaseAggregateRoot
	title       string
	description string
	duration    int // minutes
	level       Level
	category    Category
	imageURL    string
	featured    bool
}

// NewJourney creates a journey for seeding.
func NewJourney(title, description string, duration int, level Level, category Category, imageURL string, featured bool) (*Journey, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: journey title cannot be empty", sharedDomain.ErrValidation)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: journey duration must be positive, got %d", sharedDomain.ErrValidation, duration)
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("%w: unknown level %q", sharedDomain.ErrValidation, level)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", sharedDomain.ErrValidation, category)
	}

	// The added event is raised after persistence, once the store has
	// assigned an identifier for the event to reference.
	return &Journey{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		title:             title,
		description:       description,
		duration:          duration,
		level:             level,
		category:          category,
		imageURL:          imageURL,
		featured:          featured,
	}, nil
}

// RehydrateJourney recreates a journey from persisted state.
func RehydrateJourney(
	base sharedDomain.BaseEntity,
	title, description string,
	duration int,
	level Level,
	category Category,
	imageURL string,
	featured bool,
) *Journey {
	return &Journey{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(base),
		title:             title,
		description:       description,
		duration:          duration,
		level:             level,
		category:          category,
		imageURL:          imageURL,
		featured:          featured,
	}
}

// Getters
func (j *Journey) Title() string       { return j.title }
func (j *Journey) Description() string { return j.description }
func (j *Journey) Duration() int       { return j.duration }
func (j *Journey) Level() Level        { return j.level }
func (j *Journey) Category() Category  { return j.category }
func (j *Journey) ImageURL() string    { return j.imageURL }
func (j *Journey) Featured() bool      { return j.featured }

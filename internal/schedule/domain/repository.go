package domain

import (
	"context"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// Repository defines the interface for schedule item persistence.
type Repository interface {
	// ListForUser returns all items owned by the user. A user with no
	// items gets an empty slice, not an error. An empty user id fails
	// with ErrAuthRequired.
	ListForUser(ctx context.Context, userID sharedDomain.UserID) ([]*ScheduleItem, error)

	// FindByID finds an item by its store identifier. A missing item
	// fails with ErrNotFound.
	FindByID(ctx context.Context, id string) (*ScheduleItem, error)

	// Create persists a new item and assigns its store identifier.
	// Creation never deduplicates: identical input creates a second
	// record with a distinct id. Retries must be caller-deduplicated.
	Create(ctx context.Context, item *ScheduleItem) error

	// Update overwrites an existing item. A missing id fails with
	// ErrNotFound, typically after a concurrent delete.
	Update(ctx context.Context, item *ScheduleItem) error

	// Delete removes an item. A missing id fails with ErrNotFound.
	Delete(ctx context.Context, id string) error
}

package domain

import "context"

// Repository defines the interface for journey persistence.
type Repository interface {
	// Save persists a new journey. The store assigns its identifier.
	Save(ctx context.Context, journey *Journey) error

	// ListAll returns all journeys in stable order. An empty catalog is
	// an empty slice, not an error.
	ListAll(ctx context.Context) ([]*Journey, error)

	// ListFeatured returns all journeys flagged as featured.
	ListFeatured(ctx context.Context) ([]*Journey, error)

	// FindByTitle looks a journey up by its display title. A dangling
	// reference returns (nil, nil), not an error.
	FindByTitle(ctx context.Context, title string) (*Journey, error)

	// Count returns the number of journeys in the catalog.
	Count(ctx context.Context) (int, error)
}

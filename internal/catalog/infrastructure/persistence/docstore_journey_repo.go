// Package persistence implements journey storage over the document store.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/sangam/internal/catalog/domain"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/docstore"
)

// JourneysCollection is the document collection holding the catalog.
const JourneysCollection = "meditation_journeys"

// journeyDocument is the stored form of a journey.
type journeyDocument struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JourneyRepository persists journeys in the document store. All read
// failures surface as ErrFetch since the catalog is the only consumer.
type JourneyRepository struct {
	store docstore.Store
}

// NewJourneyRepository creates a new journey repository.
func NewJourneyRepository(store docstore.Store) *JourneyRepository {
	return &JourneyRepository{store: store}
}

// Save persists a new journey and assigns its store identifier.
func (r *JourneyRepository) Save(ctx context.Context, journey *domain.Journey) error {
	data, err := docstore.Encode(journeyDocument{
		Title:       journey.Title(),
		Description: journey.Description(),
		Duration:    journey.Duration(),
		Level:       string(journey.Level()),
		Category:    string(journey.Category()),
		ImageURL:    journey.ImageURL(),
		Featured:    journey.Featured(),
		CreatedAt:   journey.CreatedAt(),
		UpdatedAt:   journey.UpdatedAt(),
	})
	if err != nil {
		return err
	}

	id, err := r.store.Create(ctx, JourneysCollection, data)
	if err != nil {
		return fmt.Errorf("%w: saving journey: %v", sharedDomain.ErrFetch, err)
	}
	journey.AssignID(id)
	return nil
}

// ListAll returns every journey in the catalog.
func (r *JourneyRepository) ListAll(ctx context.Context) ([]*domain.Journey, error) {
	docs, err := r.store.List(ctx, JourneysCollection)
	if err != nil {
		return nil, fmt.Errorf("%w: listing journeys: %v", sharedDomain.ErrFetch, err)
	}
	return decodeJourneys(docs)
}

// ListFeatured returns journeys flagged as featured.
func (r *JourneyRepository) ListFeatured(ctx context.Context) ([]*domain.Journey, error) {
	docs, err := r.store.List(ctx, JourneysCollection, docstore.Filter{Field: "featured", Value: true})
	if err != nil {
		return nil, fmt.Errorf("%w: listing featured journeys: %v", sharedDomain.ErrFetch, err)
	}
	return decodeJourneys(docs)
}

// FindByTitle looks up a journey by display title. A missing title is a
// dangling reference and returns (nil, nil).
func (r *JourneyRepository) FindByTitle(ctx context.Context, title string) (*domain.Journey, error) {
	docs, err := r.store.List(ctx, JourneysCollection, docstore.Filter{Field: "title", Value: title})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: finding journey %q: %v", sharedDomain.ErrFetch, title, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return decodeJourney(docs[0])
}

// Count returns the catalog size.
func (r *JourneyRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.store.List(ctx, JourneysCollection)
	if err != nil {
		return 0, fmt.Errorf("%w: counting journeys: %v", sharedDomain.ErrFetch, err)
	}
	return len(docs), nil
}

func decodeJourneys(docs []docstore.Document) ([]*domain.Journey, error) {
	journeys := make([]*domain.Journey, 0, len(docs))
	for _, doc := range docs {
		journey, err := decodeJourney(doc)
		if err != nil {
			return nil, err
		}
		journeys = append(journeys, journey)
	}
	return journeys, nil
}

func decodeJourney(doc docstore.Document) (*domain.Journey, error) {
	var record journeyDocument
	if err := docstore.Decode(doc, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", sharedDomain.ErrFetch, err)
	}
	return domain.RehydrateJourney(
		sharedDomain.RehydrateBaseEntity(doc.ID, record.CreatedAt, record.UpdatedAt),
		record.Title,
		record.Description,
		record.Duration,
		domain.Level(record.Level),
		domain.Category(record.Category),
		record.ImageURL,
		record.Featured,
	), nil
}

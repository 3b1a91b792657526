// Package persistence implements schedule item storage over the document
// store.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/sangam/internal/schedule/domain"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/docstore"
)

// SchedulesCollection is the document collection holding schedule items.
const SchedulesCollection = "meditation_schedules"

// scheduleDocument is the stored form of a schedule item. The userId
// field is part of the payload so the store can filter by owner.
type scheduleDocument struct {
	UserID    string    `json:"userId"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	Practice  string    `json:"practice"`
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleRepository persists schedule items in the document store.
type ScheduleRepository struct {
	store docstore.Store
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(store docstore.Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// ListForUser returns all items owned by the user.
func (r *ScheduleRepository) ListForUser(ctx context.Context, userID sharedDomain.UserID) ([]*domain.ScheduleItem, error) {
	if userID.IsEmpty() {
		return nil, fmt.Errorf("%w: listing a schedule needs a signed-in user", sharedDomain.ErrAuthRequired)
	}

	docs, err := r.store.List(ctx, SchedulesCollection, docstore.Filter{Field: "userId", Value: userID.String()})
	if err != nil {
		return nil, storeFailure("listing schedule", err)
	}

	items := make([]*domain.ScheduleItem, 0, len(docs))
	for _, doc := range docs {
		item, err := decodeItem(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FindByID finds an item by its store identifier.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: schedule item id is empty", sharedDomain.ErrNotFound)
	}

	doc, err := r.store.Get(ctx, SchedulesCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: schedule item %s", sharedDomain.ErrNotFound, id)
		}
		return nil, storeFailure("finding schedule item", err)
	}
	return decodeItem(doc)
}

// Create persists a new item and assigns its store identifier.
func (r *ScheduleRepository) Create(ctx context.Context, item *domain.ScheduleItem) error {
	data, err := encodeItem(item)
	if err != nil {
		return err
	}

	id, err := r.store.Create(ctx, SchedulesCollection, data)
	if err != nil {
		return storeFailure("creating schedule item", err)
	}
	item.AssignID(id)
	return nil
}

// Update overwrites all fields of an existing item.
func (r *ScheduleRepository) Update(ctx context.Context, item *domain.ScheduleItem) error {
	data, err := encodeItem(item)
	if err != nil {
		return err
	}

	if err := r.store.Update(ctx, SchedulesCollection, item.ID(), data); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return fmt.Errorf("%w: schedule item %s", sharedDomain.ErrNotFound, item.ID())
		}
		return storeFailure("updating schedule item", err)
	}
	return nil
}

// Delete removes an item. Deleting an already-deleted item fails with
// ErrNotFound so the caller can surface a refresh prompt.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, SchedulesCollection, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return fmt.Errorf("%w: schedule item %s", sharedDomain.ErrNotFound, id)
		}
		return storeFailure("deleting schedule item", err)
	}
	return nil
}

// storeFailure maps backend failures to ErrStoreUnavailable. Errors that
// already carry the sentinel (from the circuit breaker wrapper) pass
// through untouched.
func storeFailure(op string, err error) error {
	if errors.Is(err, sharedDomain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", sharedDomain.ErrStoreUnavailable, op, err)
}

func encodeItem(item *domain.ScheduleItem) ([]byte, error) {
	return docstore.Encode(scheduleDocument{
		UserID:    item.UserID().String(),
		Day:       string(item.Day()),
		Time:      string(item.Time()),
		Practice:  item.Practice(),
		Duration:  item.Duration(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	})
}

func decodeItem(doc docstore.Document) (*domain.ScheduleItem, error) {
	var record scheduleDocument
	if err := docstore.Decode(doc, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", sharedDomain.ErrStoreUnavailable, err)
	}
	return domain.RehydrateScheduleItem(
		sharedDomain.RehydrateBaseEntity(doc.ID, record.CreatedAt, record.UpdatedAt),
		sharedDomain.NewUserID(record.UserID),
		domain.Day(record.Day),
		domain.TimeSlot(record.Time),
		record.Practice,
		record.Duration,
	), nil
}

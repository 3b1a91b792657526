// Package persistence implements user stats storage over the document
// store.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/sangam/internal/session/domain"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/docstore"
)

// StatsCollection is the document collection holding per-user session
// stats.
const StatsCollection = "user_stats"

type statsDocument struct {
	UserID        string    `json:"userId"`
	TotalSessions int       `json:"totalSessions"`
	TotalMinutes  int       `json:"totalMinutes"`
	LastPractice  string    `json:"lastPractice,omitempty"`
	LastSessionAt time.Time `json:"lastSessionAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StatsRepository persists user stats in the document store.
type StatsRepository struct {
	store docstore.Store
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(store docstore.Store) *StatsRepository {
	return &StatsRepository{store: store}
}

// FindForUser returns the user's stats record, or (nil, nil) before the
// first completed session.
func (r *StatsRepository) FindForUser(ctx context.Context, userID sharedDomain.UserID) (*domain.UserStats, error) {
	if userID.IsEmpty() {
		return nil, fmt.Errorf("%w: reading stats needs a signed-in user", sharedDomain.ErrAuthRequired)
	}

	docs, err := r.store.List(ctx, StatsCollection, docstore.Filter{Field: "userId", Value: userID.String()})
	if err != nil {
		return nil, storeFailure("finding user stats", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var record statsDocument
	if err := docstore.Decode(docs[0], &record); err != nil {
		return nil, fmt.Errorf("%w: %v", sharedDomain.ErrStoreUnavailable, err)
	}
	return domain.RehydrateUserStats(
		sharedDomain.RehydrateBaseEntity(docs[0].ID, record.CreatedAt, record.UpdatedAt),
		sharedDomain.NewUserID(record.UserID),
		record.TotalSessions,
		record.TotalMinutes,
		record.LastPractice,
		record.LastSessionAt,
	), nil
}

// Save persists a stats record, creating it on first use.
func (r *StatsRepository) Save(ctx context.Context, stats *domain.UserStats) error {
	data, err := docstore.Encode(statsDocument{
		UserID:        stats.UserID().String(),
		TotalSessions: stats.TotalSessions(),
		TotalMinutes:  stats.TotalMinutes(),
		LastPractice:  stats.LastPractice(),
		LastSessionAt: stats.LastSessionAt(),
		CreatedAt:     stats.CreatedAt(),
		UpdatedAt:     stats.UpdatedAt(),
	})
	if err != nil {
		return err
	}

	if !stats.IsPersisted() {
		id, err := r.store.Create(ctx, StatsCollection, data)
		if err != nil {
			return storeFailure("creating user stats", err)
		}
		stats.AssignID(id)
		return nil
	}

	if err := r.store.Update(ctx, StatsCollection, stats.ID(), data); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return fmt.Errorf("%w: user stats %s", sharedDomain.ErrNotFound, stats.ID())
		}
		return storeFailure("updating user stats", err)
	}
	return nil
}

func storeFailure(op string, err error) error {
	if errors.Is(err, sharedDomain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", sharedDomain.ErrStoreUnavailable, op, err)
}

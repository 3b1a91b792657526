package domain

import (
	"context"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// StatsRepository defines the interface for user stats persistence.
type StatsRepository interface {
	// FindForUser returns the user's stats record, or (nil, nil) if no
	// session has been completed yet.
	FindForUser(ctx context.Context, userID sharedDomain.UserID) (*UserStats, error)

	// Save persists a stats record, creating it on first use.
	Save(ctx context.Context, stats *UserStats) error
}

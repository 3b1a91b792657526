package domain

import (
	"fmt"
	"time"

	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// UserStats accumulates a user's completed meditation sessions. One
// record exists per user, created lazily on the first completion.
type UserStats struct {
	sharedDomain.BaseAggregateRoot
	userID        sharedDomain.UserID
	totalSessions int
	totalMinutes  int
	lastPractice  string
	lastSessionAt time.Time
}

// NewUserStats creates an empty stats record for a user.
func NewUserStats(userID sharedDomain.UserID) (*UserStats, error) {
	if userID.IsEmpty() {
		return nil, fmt.Errorf("%w: stats need an owner", sharedDomain.ErrAuthRequired)
	}
	return &UserStats{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		userID:            userID,
	}, nil
}

// RehydrateUserStats recreates a stats record from persisted state.
func RehydrateUserStats(
	base sharedDomain.BaseEntity,
	userID sharedDomain.UserID,
	totalSessions, totalMinutes int,
	lastPractice string,
	lastSessionAt time.Time,
) *UserStats {
	return &UserStats{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(base),
		userID:            userID,
		totalSessions:     totalSessions,
		totalMinutes:      totalMinutes,
		lastPractice:      lastPractice,
		lastSessionAt:     lastSessionAt,
	}
}

// Getters
func (s *UserStats) UserID() sharedDomain.UserID { return s.userID }
func (s *UserStats) TotalSessions() int          { return s.totalSessions }
func (s *UserStats) TotalMinutes() int           { return s.totalMinutes }
func (s *UserStats) LastPractice() string        { return s.lastPractice }
func (s *UserStats) LastSessionAt() time.Time    { return s.lastSessionAt }

// RecordSession folds a completed session into the totals.
func (s *UserStats) RecordSession(practice string, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: session minutes must be positive, got %d", sharedDomain.ErrValidation, minutes)
	}
	s.totalSessions++
	s.totalMinutes += minutes
	s.lastPractice = practice
	s.lastSessionAt = time.Now().UTC()
	s.Touch()

	// The completed event is raised after persistence so it carries the
	// store-assigned identifier even on a first session.
	return nil
}

// Package queries contains read operations for meditation sessions.
package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/sangam/internal/session/domain"
	sharedDomain "github.com/felixgeelhaar/sangam/internal/shared/domain"
)

// UserStatsDTO is the read model for a user's session stats.
type UserStatsDTO struct {
	UserID        string    `json:"userId"`
	TotalSessions int       `json:"totalSessions"`
	TotalMinutes  int       `json:"totalMinutes"`
	LastPractice  string    `json:"lastPractice,omitempty"`
	LastSessionAt time.Time `json:"lastSessionAt"`
}

// GetUserStatsQuery reads a user's accumulated session stats.
type GetUserStatsQuery struct {
	UserID string
}

// QueryName returns the query name.
func (q GetUserStatsQuery) QueryName() string { return "session.get_user_stats" }

// GetUserStatsHandler handles GetUserStatsQuery.
type GetUserStatsHandler struct {
	repo domain.StatsRepository
}

// NewGetUserStatsHandler creates a new handler.
func NewGetUserStatsHandler(repo domain.StatsRepository) *GetUserStatsHandler {
	return &GetUserStatsHandler{repo: repo}
}

// Handle returns the stats, or a zeroed record before the first
// completed session.
func (h *GetUserStatsHandler) Handle(ctx context.Context, query GetUserStatsQuery) (UserStatsDTO, error) {
	stats, err := h.repo.FindForUser(ctx, sharedDomain.NewUserID(query.UserID))
	if err != nil {
		return UserStatsDTO{}, err
	}
	if stats == nil {
		return UserStatsDTO{UserID: query.UserID}, nil
	}
	return UserStatsDTO{
		UserID:        stats.UserID().String(),
		TotalSessions: stats.TotalSessions(),
		TotalMinutes:  stats.TotalMinutes(),
		LastPractice:  stats.LastPractice(),
		LastSessionAt: stats.LastSessionAt(),
	}, nil
}

package queries

import (
	"context"

	"github.com/felixgeelhaar/sangam/internal/catalog/domain"
)

// GetJourneyByTitleQuery resolves a practice name to its journey record.
type GetJourneyByTitleQuery struct {
	Title string
}

// QueryName returns the query name.
func (q GetJourneyByTitleQuery) QueryName() string { return "catalog.get_journey_by_title" }

// GetJourneyByTitleHandler handles GetJourneyByTitleQuery.
type GetJourneyByTitleHandler struct {
	repo domain.Repository
}

// NewGetJourneyByTitleHandler creates a new handler.
func NewGetJourneyByTitleHandler(repo domain.Repository) *GetJourneyByTitleHandler {
	return &GetJourneyByTitleHandler{repo: repo}
}

// Handle looks the journey up. Practice names are soft references, so a
// dangling title resolves to nil rather than an error.
func (h *GetJourneyByTitleHandler) Handle(ctx context.Context, query GetJourneyByTitleQuery) (*JourneyDTO, error) {
	journey, err := h.repo.FindByTitle(ctx, query.Title)
	if err != nil {
		return nil, err
	}
	if journey == nil {
		return nil, nil
	}
	dto := toDTOs([]*domain.Journey{journey})[0]
	return &dto, nil
}

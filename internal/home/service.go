package home

import (
	"context"
	"errors"

	"locallibrary/internal/session"
)

type Service struct {
	repo   Repository
	visits VisitCounter
}

func NewService(repo Repository, visits VisitCounter) *Service {
	return &Service{repo: repo, visits: visits}
}

// Index returns the catalogue counts and bumps the visitor's view count.
// Visits is the count before this view.
func (s *Service) Index(ctx context.Context, sessionID string) (Index, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return Index{}, err
	}

	visits, err := s.visits.Increment(ctx, sessionID, session.KeyNumVisits)
	if err != nil && !errors.Is(err, session.ErrNoSession) {
		return Index{}, err
	}
	return Index{Counts: counts, Visits: visits}, nil
}

package author

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Author, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

// Get returns the author with the books attributed to them.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	if books == nil {
		books = []BookSummary{}
	}
	return Detail{Author: a, Books: books}, nil
}

// Create stores a new author stamped with the acting user.
func (s *Service) Create(ctx context.Context, actorID string, f Fields) (Author, error) {
	a := Author{CreatedBy: &actorID}
	f.apply(&a)
	if err := s.repo.Create(ctx, &a); err != nil {
		return Author{}, err
	}
	return a, nil
}

// Update loads the author, applies f and writes it back. The creator stamp
// is preserved.
func (s *Service) Update(ctx context.Context, id int64, f Fields) (Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Author{}, err
	}
	f.apply(&a)
	if err := s.repo.Update(ctx, &a); err != nil {
		return Author{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

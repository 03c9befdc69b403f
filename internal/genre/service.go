package genre

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Genre, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Get returns the genre together with the books filed under it.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	g, err := s.repo.GetByID(ctx, id)
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
	return Detail{Genre: g, Books: books}, nil
}

// ExistAll reports whether every id names a stored genre.
func (s *Service) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	return s.repo.ExistAll(ctx, ids)
}

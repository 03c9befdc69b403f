package book

import (
	"context"

	"locallibrary/internal/bookinstance"
	"locallibrary/internal/platform/openlibrary"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	genres GenreChecker
	copies CopyLister
	isbn   ISBNLookup
}

// NewService creates a new book service. isbn may be nil when no metadata
// source is configured.
func NewService(repo Repository, genres GenreChecker, copies CopyLister, isbn ISBNLookup) *Service {
	return &Service{repo: repo, genres: genres, copies: copies, isbn: isbn}
}

// List returns a list of books matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Get returns the book together with its copies.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	copies, err := s.copies.ListByBook(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	if copies == nil {
		copies = []bookinstance.BookInstance{}
	}
	return Detail{Book: b, Copies: copies}, nil
}

func (s *Service) checkGenres(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	ok, err := s.genres.ExistAll(ctx, ids)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownGenre
	}
	return nil
}

// Create stores a new book stamped with the acting user.
func (s *Service) Create(ctx context.Context, actorID string, f Fields) (Book, error) {
	if err := s.checkGenres(ctx, f.GenreIDs); err != nil {
		return Book{}, err
	}
	b := Book{CreatedBy: &actorID}
	f.apply(&b)
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update loads the book, applies f and writes it back, replacing its genre
// set. The creator stamp is preserved.
func (s *Service) Update(ctx context.Context, id int64, f Fields) (Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}
	if err := s.checkGenres(ctx, f.GenreIDs); err != nil {
		return Book{}, err
	}
	f.apply(&b)
	if err := s.repo.Update(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes the book. Its copies and genre links go with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Lookup fetches catalogue metadata for isbn to prefill a new book.
func (s *Service) Lookup(ctx context.Context, isbn string) (openlibrary.Metadata, error) {
	if s.isbn == nil {
		return openlibrary.Metadata{}, openlibrary.ErrNotFound
	}
	return s.isbn.LookupISBN(ctx, isbn)
}

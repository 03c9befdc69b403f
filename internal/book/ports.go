package book

import (
	"context"

	"locallibrary/internal/bookinstance"
	"locallibrary/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, int, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id int64) error
}

type GenreChecker interface {
	ExistAll(ctx context.Context, ids []int64) (bool, error)
}

type CopyLister interface {
	ListByBook(ctx context.Context, bookID int64) ([]bookinstance.BookInstance, error)
}

type ISBNLookup interface {
	LookupISBN(ctx context.Context, isbn string) (openlibrary.Metadata, error)
}

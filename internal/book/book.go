package book

import (
	"errors"
	"time"

	"locallibrary/internal/bookinstance"
	"locallibrary/internal/genre"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound      = errors.New("book not found")
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")
	ErrUnknownAuthor = errors.New("author does not exist")
	ErrUnknownGenre  = errors.New("one or more genres do not exist")
)

type Book struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	AuthorID   *int64        `json:"author_id"`
	AuthorName string        `json:"author_name,omitempty"`
	Summary    string        `json:"summary"`
	ISBN       string        `json:"isbn"`
	Genres     []genre.Genre `json:"genres"`
	CreatedBy  *string       `json:"created_by,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Detail is a book with its physical copies.
type Detail struct {
	Book
	Copies []bookinstance.BookInstance `json:"copies"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	AuthorID int64
	GenreID  int64
	Q        string
	Limit    int
	Offset   int
}

// Fields is the validated, editable field set shared by create and update.
type Fields struct {
	Title    string
	AuthorID *int64
	Summary  string
	ISBN     string
	GenreIDs []int64
}

func (f Fields) apply(b *Book) {
	b.Title = f.Title
	b.AuthorID = f.AuthorID
	b.Summary = f.Summary
	b.ISBN = f.ISBN
	b.Genres = make([]genre.Genre, 0, len(f.GenreIDs))
	for _, id := range f.GenreIDs {
		b.Genres = append(b.Genres, genre.Genre{ID: id})
	}
}

// GenreIDs lists the ids of the book's genres.
func (b Book) GenreIDs() []int64 {
	ids := make([]int64, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

package book

import (
	"errors"
	"slices"
	"strings"

	"locallibrary/internal/httpx"
)

// Form is the book create/update submission.
type Form struct {
	Title    string  `json:"title" validate:"required,max=200"`
	AuthorID *int64  `json:"author_id" validate:"omitempty,gt=0"`
	Summary  string  `json:"summary" validate:"max=1000"`
	ISBN     string  `json:"isbn" validate:"required,isbn"`
	GenreIDs []int64 `json:"genre_ids" validate:"dive,gt=0"`
}

func FormFrom(b Book) Form {
	return Form{
		Title:    b.Title,
		AuthorID: b.AuthorID,
		Summary:  b.Summary,
		ISBN:     b.ISBN,
		GenreIDs: b.GenreIDs(),
	}
}

func (f Form) Parse() (Fields, []httpx.ErrorDetail) {
	f.Title = strings.TrimSpace(f.Title)
	if details := httpx.ValidateStruct(f); len(details) > 0 {
		return Fields{}, details
	}

	genreIDs := slices.Clone(f.GenreIDs)
	slices.Sort(genreIDs)
	return Fields{
		Title:    f.Title,
		AuthorID: f.AuthorID,
		Summary:  strings.TrimSpace(f.Summary),
		ISBN:     httpx.NormalizeISBN(f.ISBN),
		GenreIDs: slices.Compact(genreIDs),
	}, nil
}

// fieldError maps a service rejection onto the form field it concerns.
func fieldError(err error, f Form) (httpx.ErrorDetail, bool) {
	switch {
	case errors.Is(err, ErrDuplicateISBN):
		return httpx.ErrorDetail{Field: "isbn", Message: "A book with this ISBN already exists", Value: f.ISBN}, true
	case errors.Is(err, ErrUnknownAuthor):
		return httpx.ErrorDetail{Field: "author_id", Message: "Select an existing author", Value: f.AuthorID}, true
	case errors.Is(err, ErrUnknownGenre):
		return httpx.ErrorDetail{Field: "genre_ids", Message: "Select existing genres", Value: f.GenreIDs}, true
	}
	return httpx.ErrorDetail{}, false
}

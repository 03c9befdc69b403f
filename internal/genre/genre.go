package genre

import "errors"

var ErrNotFound = errors.New("genre not found")

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookSummary is a book listed on a genre's detail view.
type BookSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Detail struct {
	Genre
	Books []BookSummary `json:"books"`
}

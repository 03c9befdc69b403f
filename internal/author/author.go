package author

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
)

var ErrNotFound = errors.New("author not found")

type Author struct {
	ID          int64       `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	DateOfBirth *civil.Date `json:"date_of_birth"`
	DateOfDeath *civil.Date `json:"date_of_death"`
	Story       string      `json:"story"`
	CreatedBy   *string     `json:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Name renders "Last, First" as used in listings.
func (a Author) Name() string {
	return a.LastName + ", " + a.FirstName
}

// BookSummary is a book listed on an author's detail view.
type BookSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}

type Detail struct {
	Author
	Books []BookSummary `json:"books"`
}

// Fields is the validated, editable field set shared by create and update.
type Fields struct {
	FirstName   string
	LastName    string
	DateOfBirth *civil.Date
	DateOfDeath *civil.Date
	Story       string
}

func (f Fields) apply(a *Author) {
	a.FirstName = f.FirstName
	a.LastName = f.LastName
	a.DateOfBirth = f.DateOfBirth
	a.DateOfDeath = f.DateOfDeath
	a.Story = f.Story
}

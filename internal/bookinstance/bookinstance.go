package bookinstance

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
)

var ErrNotFound = errors.New("book instance not found")

// Status is the loan state of a copy, stored as a single letter.
type Status string

const (
	StatusMaintenance Status = "m"
	StatusOnLoan      Status = "o"
	StatusAvailable   Status = "a"
	StatusReserved    Status = "r"
)

func (s Status) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return "Unknown"
}

// BookInstance is a physical copy of a book. DueBack only carries meaning
// while the copy is on loan.
type BookInstance struct {
	ID         string      `json:"id"`
	BookID     int64       `json:"book_id"`
	BookTitle  string      `json:"book_title"`
	Imprint    string      `json:"imprint"`
	DueBack    *civil.Date `json:"due_back"`
	BorrowerID *string     `json:"borrower_id,omitempty"`
	Status     Status      `json:"status"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (b BookInstance) IsOverdue(today civil.Date) bool {
	return b.Status == StatusOnLoan && b.DueBack != nil && b.DueBack.Before(today)
}

// Query filters a listing. Zero values mean "any"; Limit 0 means no limit.
type Query struct {
	Status     Status
	BorrowerID string
	BookID     int64
	Limit      int
	Offset     int
}

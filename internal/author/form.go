package author

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"locallibrary/internal/httpx"
)

// DateLayout is the MM-DD-YYYY format author forms accept and render.
const DateLayout = "01-02-2006"

// Form is the author create/update submission. Dates travel as MM-DD-YYYY
// strings and are left blank when unknown.
type Form struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth"`
	DateOfDeath string `json:"date_of_death"`
	Story       string `json:"story" validate:"max=5000"`
}

// FormFrom pre-fills a form from a stored author.
func FormFrom(a Author) Form {
	return Form{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: formatDate(a.DateOfBirth),
		DateOfDeath: formatDate(a.DateOfDeath),
		Story:       a.Story,
	}
}

// Parse validates the form and converts it into Fields. A non-empty
// detail list means the submission must be re-presented.
func (f Form) Parse() (Fields, []httpx.ErrorDetail) {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)

	details := httpx.ValidateStruct(f)

	birth, err := parseDate(f.DateOfBirth)
	if err != nil {
		details = append(details, httpx.ErrorDetail{
			Field: "date_of_birth", Message: "Enter a valid date (MM-DD-YYYY)", Value: f.DateOfBirth,
		})
	}
	death, err := parseDate(f.DateOfDeath)
	if err != nil {
		details = append(details, httpx.ErrorDetail{
			Field: "date_of_death", Message: "Enter a valid date (MM-DD-YYYY)", Value: f.DateOfDeath,
		})
	}
	if birth != nil && death != nil && death.Before(*birth) {
		details = append(details, httpx.ErrorDetail{
			Field: "date_of_death", Message: "Date of death cannot precede date of birth", Value: f.DateOfDeath,
		})
	}
	if len(details) > 0 {
		return Fields{}, details
	}

	return Fields{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		DateOfBirth: birth,
		DateOfDeath: death,
		Story:       strings.TrimSpace(f.Story),
	}, nil
}

func parseDate(s string) (*civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	d := civil.DateOf(t)
	return &d, nil
}

func formatDate(d *civil.Date) string {
	if d == nil {
		return ""
	}
	return d.In(time.UTC).Format(DateLayout)
}

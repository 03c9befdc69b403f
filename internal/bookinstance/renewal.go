package bookinstance

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

const (
	// MaxRenewalAhead is the furthest a due date may be pushed, in days.
	MaxRenewalAhead = 28
	// DefaultRenewalAhead pre-fills the renewal form.
	DefaultRenewalAhead = 21
)

var (
	ErrRenewalInPast      = errors.New("invalid date - renewal in past")
	ErrRenewalTooFarAhead = errors.New("invalid date - renewal more than 4 weeks ahead")
	ErrRenewalDateMissing = errors.New("a renewal date is required")
	ErrRenewalDateFormat  = errors.New("enter a valid date (YYYY-MM-DD)")
)

// ValidationError attaches a renewal failure to the submitted field.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Message is the text shown next to the field.
func (e *ValidationError) Message() string {
	msg := e.Err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// ValidateRenewalDate accepts d when today <= d <= today+MaxRenewalAhead.
func ValidateRenewalDate(d, today civil.Date) (civil.Date, error) {
	if d.Before(today) {
		return civil.Date{}, ErrRenewalInPast
	}
	if d.After(today.AddDays(MaxRenewalAhead)) {
		return civil.Date{}, ErrRenewalTooFarAhead
	}
	return d, nil
}

func ProposedRenewalDate(today civil.Date) civil.Date {
	return today.AddDays(DefaultRenewalAhead)
}

// RenewalForm is the renewal submission. due_back is the model-bound
// field; renewal_date is accepted for the standalone form. Both go through
// ValidateRenewalDate.
type RenewalForm struct {
	DueBack     string `json:"due_back,omitempty"`
	RenewalDate string `json:"renewal_date,omitempty"`
}

// Date returns the submitted date and the field it came from. due_back
// wins when both are present.
func (f RenewalForm) Date() (civil.Date, string, error) {
	field, raw := "due_back", f.DueBack
	if raw == "" && f.RenewalDate != "" {
		field, raw = "renewal_date", f.RenewalDate
	}
	if raw == "" {
		return civil.Date{}, field, &ValidationError{Field: field, Err: ErrRenewalDateMissing}
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, field, &ValidationError{Field: field, Value: raw, Err: ErrRenewalDateFormat}
	}
	return d, field, nil
}

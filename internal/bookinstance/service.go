package bookinstance

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
)

type Service struct {
	repo     Repository
	loc      *time.Location
	now      func() time.Time
	renewals *prometheus.CounterVec
}

type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRegisterer exposes the renewal outcome counter on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.renewals = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "locallibrary",
			Subsystem: "catalog",
			Name:      "renewals_total",
			Help:      "Loan renewal submissions by outcome.",
		}, []string{"result"})
		reg.MustRegister(s.renewals)
	}
}

// NewService computes "today" in loc; a nil loc means UTC.
func NewService(repo Repository, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{repo: repo, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Today() civil.Date {
	return civil.DateOf(s.now().In(s.loc))
}

func (s *Service) Get(ctx context.Context, id string) (BookInstance, error) {
	return s.repo.GetByID(ctx, id)
}

// RenewalView is what the renewal form shows before submission.
type RenewalView struct {
	Instance     BookInstance `json:"book_instance"`
	ProposedDate civil.Date   `json:"proposed_due_back"`
	MaxDate      civil.Date   `json:"max_due_back"`
}

func (s *Service) RenewalForm(ctx context.Context, id string) (RenewalView, error) {
	bi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return RenewalView{}, err
	}
	today := s.Today()
	return RenewalView{
		Instance:     bi,
		ProposedDate: ProposedRenewalDate(today),
		MaxDate:      today.AddDays(MaxRenewalAhead),
	}, nil
}

// Renew looks the copy up, binds the submitted date and writes it as the
// new due date once ValidateRenewalDate accepts it. A rejected submission
// returns a *ValidationError and leaves the copy untouched.
func (s *Service) Renew(ctx context.Context, id string, form RenewalForm) (BookInstance, error) {
	bi, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return BookInstance{}, err
	}

	d, field, err := form.Date()
	if err != nil {
		s.observe("invalid")
		return BookInstance{}, err
	}
	valid, err := ValidateRenewalDate(d, s.Today())
	if err != nil {
		s.observe("invalid")
		return BookInstance{}, &ValidationError{Field: field, Value: d.String(), Err: err}
	}

	if err := s.repo.UpdateDueBack(ctx, id, valid); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.observe("error")
		}
		return BookInstance{}, err
	}
	s.observe("renewed")
	bi.DueBack = &valid
	return bi, nil
}

func (s *Service) observe(result string) {
	if s.renewals != nil {
		s.renewals.WithLabelValues(result).Inc()
	}
}

// ListBorrowed returns every copy on loan, soonest due first.
func (s *Service) ListBorrowed(ctx context.Context, limit, offset int) ([]BookInstance, int, error) {
	return s.repo.List(ctx, Query{Status: StatusOnLoan, Limit: limit, Offset: offset})
}

// ListLoanedBy returns the copies on loan to userID, soonest due first.
func (s *Service) ListLoanedBy(ctx context.Context, userID string, limit, offset int) ([]BookInstance, int, error) {
	return s.repo.List(ctx, Query{Status: StatusOnLoan, BorrowerID: userID, Limit: limit, Offset: offset})
}

func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]BookInstance, error) {
	copies, _, err := s.repo.List(ctx, Query{BookID: bookID})
	return copies, err
}

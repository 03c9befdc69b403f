package session

import (
	"context"
	"time"
)

// Store is the explicit visitor session handed to handlers that keep
// per-visitor state.
type Store struct {
	repo Repository
	now  func() time.Time
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo, now: time.Now}
}

// Increment bumps key for the session and returns the value seen before
// the bump.
func (s *Store) Increment(ctx context.Context, sessionID, key string) (int64, error) {
	if sessionID == "" {
		return 0, ErrNoSession
	}
	return s.repo.Increment(ctx, sessionID, key)
}

// CleanupExpired drops sessions untouched for longer than ttl.
func (s *Store) CleanupExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	return s.repo.DeleteIdle(ctx, s.now().Add(-ttl))
}

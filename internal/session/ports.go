package session

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=session

// Repository persists integer values per (session, key).
type Repository interface {
	// Increment adds one to the stored value and returns the value it held
	// before, zero when the key was absent.
	Increment(ctx context.Context, sessionID, key string) (int64, error)
	DeleteIdle(ctx context.Context, olderThan time.Time) (int64, error)
}

package home

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=home

type Repository interface {
	Counts(ctx context.Context) (Counts, error)
}

// VisitCounter is the per-visitor session store.
type VisitCounter interface {
	Increment(ctx context.Context, sessionID, key string) (int64, error)
}

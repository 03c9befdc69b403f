package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Increment(ctx context.Context, sessionID, key string) (int64, error) {
	const query = `
	INSERT INTO visitor_sessions (session_id, key, value, updated_at)
	VALUES ($1, $2, 1, now())
	ON CONFLICT (session_id, key)
	DO UPDATE SET value = visitor_sessions.value + 1, updated_at = now()
	RETURNING value - 1
	`
	var previous int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, sessionID, key).Scan(&previous); err != nil {
		return 0, fmt.Errorf("increment %s: %w", key, err)
	}
	return previous, nil
}

func (r *PostgresRepo) DeleteIdle(ctx context.Context, olderThan time.Time) (int64, error) {
	const query = `DELETE FROM visitor_sessions WHERE updated_at < $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, olderThan)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

package author

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary/internal/platform/pgdate"
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

const authorColumns = `id, first_name, last_name, date_of_birth, date_of_death, story, created_by::text, created_at, updated_at`

func scanAuthor(row pgx.Row) (Author, error) {
	var (
		a            Author
		birth, death pgtype.Date
	)
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &birth, &death, &a.Story, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Author{}, err
	}
	a.DateOfBirth = pgdate.FromPG(birth)
	a.DateOfDeath = pgdate.FromPG(death)
	return a, nil
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Author, int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	rows, err := r.db.Query(timeoutCtx, `
		SELECT `+authorColumns+`
		FROM authors
		ORDER BY last_name, first_name, id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	var out []Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	a, err := scanAuthor(r.db.QueryRow(timeoutCtx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) ListBooks(ctx context.Context, authorID int64) ([]BookSummary, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `
		SELECT id, title, isbn FROM books
		WHERE author_id = $1
		ORDER BY title, id`, authorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[BookSummary])
}

func (r *PostgresRepo) Create(ctx context.Context, a *Author) error {
	const query = `
	INSERT INTO authors (first_name, last_name, date_of_birth, date_of_death, story, created_by)
	VALUES ($1, $2, $3, $4, $5, $6::uuid)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		a.FirstName, a.LastName, pgdate.ToPG(a.DateOfBirth), pgdate.ToPG(a.DateOfDeath), a.Story, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

// Update writes the editable fields. created_by is never touched.
func (r *PostgresRepo) Update(ctx context.Context, a *Author) error {
	const query = `
	UPDATE authors
	SET first_name = $2, last_name = $3, date_of_birth = $4, date_of_death = $5, story = $6, updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		a.ID, a.FirstName, a.LastName, pgdate.ToPG(a.DateOfBirth), pgdate.ToPG(a.DateOfDeath), a.Story,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

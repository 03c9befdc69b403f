package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary/internal/genre"
)

const (
	dialectPostgres     = "postgres"
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
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

func bookDataset() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From(goqu.T("books").As("b")).
		LeftJoin(goqu.T("authors").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("b.author_id"))))
}

func selectBookColumns(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Select(
		goqu.I("b.id"),
		goqu.I("b.title"),
		goqu.I("b.author_id"),
		goqu.L("COALESCE(a.last_name || ', ' || a.first_name, '')"),
		goqu.I("b.summary"),
		goqu.I("b.isbn"),
		goqu.L("b.created_by::text"),
		goqu.I("b.created_at"),
		goqu.I("b.updated_at"),
	)
}

func buildListQueries(q Query) (string, []any, string, []any, error) {
	ds := bookDataset()
	if q.AuthorID != 0 {
		ds = ds.Where(goqu.I("b.author_id").Eq(q.AuthorID))
	}
	if q.GenreID != 0 {
		ds = ds.Where(goqu.L(
			"EXISTS (SELECT 1 FROM book_genres bg WHERE bg.book_id = b.id AND bg.genre_id = ?)", q.GenreID,
		))
	}
	if term := strings.TrimSpace(q.Q); term != "" {
		pattern := "%" + term + "%"
		ds = ds.Where(goqu.Or(
			goqu.I("b.title").ILike(pattern),
			goqu.I("b.isbn").ILike(pattern),
		))
	}

	data := selectBookColumns(ds).Order(goqu.I("b.title").Asc(), goqu.I("b.id").Asc())
	if q.Limit > 0 {
		data = data.Limit(uint(q.Limit)).Offset(uint(q.Offset))
	}
	dataSQL, dataArgs, err := data.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("build list query: %w", err)
	}
	countSQL, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return "", nil, "", nil, fmt.Errorf("build count query: %w", err)
	}
	return dataSQL, dataArgs, countSQL, countArgs, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &b.Summary, &b.ISBN, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := buildListQueries(q)
	if err != nil {
		return nil, 0, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	rows, err := r.db.Query(timeoutCtx, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachGenres(timeoutCtx, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// attachGenres fills Genres for every book with one query.
func (r *PostgresRepo) attachGenres(ctx context.Context, books []Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, len(books))
	index := make(map[int64]int, len(books))
	for i := range books {
		ids[i] = books[i].ID
		index[books[i].ID] = i
		books[i].Genres = []genre.Genre{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT bg.book_id, g.id, g.name
		FROM book_genres bg
		JOIN genres g ON g.id = bg.genre_id
		WHERE bg.book_id = ANY($1)
		ORDER BY g.name`, ids)
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookID int64
			g      genre.Genre
		)
		if err := rows.Scan(&bookID, &g.ID, &g.Name); err != nil {
			return err
		}
		i := index[bookID]
		books[i].Genres = append(books[i].Genres, g)
	}
	return rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	query, args, err := selectBookColumns(bookDataset()).
		Where(goqu.I("b.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return Book{}, fmt.Errorf("build get query: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}

	books := []Book{b}
	if err := r.attachGenres(timeoutCtx, books); err != nil {
		return Book{}, err
	}
	return books[0], nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation && pgErr.ConstraintName == "books_isbn_key":
			return ErrDuplicateISBN
		case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == "books_author_id_fkey":
			return ErrUnknownAuthor
		case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == "book_genres_genre_id_fkey":
			return ErrUnknownGenre
		}
	}
	return err
}

func replaceGenres(ctx context.Context, tx pgx.Tx, bookID int64, genreIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return err
	}
	if len(genreIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO book_genres (book_id, genre_id)
		SELECT $1, unnest($2::bigint[])`, bookID, genreIDs)
	return err
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	err = tx.QueryRow(timeoutCtx, `
		INSERT INTO books (title, author_id, summary, isbn, created_by)
		VALUES ($1, $2, $3, $4, $5::uuid)
		RETURNING id, created_at, updated_at`,
		b.Title, b.AuthorID, b.Summary, b.ISBN, b.CreatedBy,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", mapWriteError(err))
	}
	if err := replaceGenres(timeoutCtx, tx, b.ID, b.GenreIDs()); err != nil {
		return fmt.Errorf("insert book genres: %w", mapWriteError(err))
	}
	return tx.Commit(timeoutCtx)
}

// Update writes the editable fields and the genre set. created_by is never
// touched.
func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	err = tx.QueryRow(timeoutCtx, `
		UPDATE books
		SET title = $2, author_id = $3, summary = $4, isbn = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		b.ID, b.Title, b.AuthorID, b.Summary, b.ISBN,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update book: %w", mapWriteError(err))
	}
	if err := replaceGenres(timeoutCtx, tx, b.ID, b.GenreIDs()); err != nil {
		return fmt.Errorf("update book genres: %w", mapWriteError(err))
	}
	return tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

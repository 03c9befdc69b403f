package bookinstance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary/internal/platform/pgdate"
)

const dialectPostgres = "postgres"

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

func baseDataset(q Query) *goqu.SelectDataset {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("book_instances").As("bi")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("bi.book_id"))))

	if q.Status != "" {
		ds = ds.Where(goqu.I("bi.status").Eq(string(q.Status)))
	}
	if q.BorrowerID != "" {
		ds = ds.Where(goqu.L("bi.borrower_id::text").Eq(q.BorrowerID))
	}
	if q.BookID != 0 {
		ds = ds.Where(goqu.I("bi.book_id").Eq(q.BookID))
	}
	return ds
}

func selectColumns(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Select(
		goqu.L("bi.id::text"),
		goqu.I("bi.book_id"),
		goqu.I("b.title"),
		goqu.I("bi.imprint"),
		goqu.I("bi.due_back"),
		goqu.L("bi.borrower_id::text"),
		goqu.I("bi.status"),
		goqu.I("bi.updated_at"),
	)
}

// buildListQueries renders the page query and its count. Copies are ordered
// soonest-due first so overdue loans lead the listing.
func buildListQueries(q Query) (string, []any, string, []any, error) {
	ds := baseDataset(q)

	data := selectColumns(ds).Order(
		goqu.I("bi.due_back").Asc().NullsLast(),
		goqu.I("bi.id").Asc(),
	)
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

func scanInstance(row pgx.Row) (BookInstance, error) {
	var (
		bi      BookInstance
		dueBack pgtype.Date
		status  string
	)
	err := row.Scan(&bi.ID, &bi.BookID, &bi.BookTitle, &bi.Imprint, &dueBack, &bi.BorrowerID, &status, &bi.UpdatedAt)
	if err != nil {
		return BookInstance{}, err
	}
	bi.DueBack = pgdate.FromPG(dueBack)
	bi.Status = Status(status)
	return bi, nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]BookInstance, int, error) {
	dataSQL, dataArgs, countSQL, countArgs, err := buildListQueries(q)
	if err != nil {
		return nil, 0, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count book instances: %w", err)
	}

	rows, err := r.db.Query(timeoutCtx, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list book instances: %w", err)
	}
	defer rows.Close()

	var out []BookInstance
	for rows.Next() {
		bi, err := scanInstance(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, bi)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (BookInstance, error) {
	query, args, err := selectColumns(baseDataset(Query{})).
		Where(goqu.L("bi.id::text").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return BookInstance{}, fmt.Errorf("build get query: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	bi, err := scanInstance(r.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BookInstance{}, ErrNotFound
		}
		return BookInstance{}, err
	}
	return bi, nil
}

// UpdateDueBack overwrites due_back. Concurrent renewals of one copy are
// last-write-wins.
func (r *PostgresRepo) UpdateDueBack(ctx context.Context, id string, dueBack civil.Date) error {
	const query = `
	UPDATE book_instances
	SET due_back = $2, updated_at = now()
	WHERE id::text = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id, pgdate.ToPG(&dueBack))
	if err != nil {
		return fmt.Errorf("update due_back: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

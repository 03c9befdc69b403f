package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"locallibrary/internal/auth"
	"locallibrary/internal/config"
	"locallibrary/internal/platform/logging"
	"locallibrary/internal/platform/pgdate"
	"locallibrary/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("connect", zap.Error(err))
	}
	defer pool.Close()

	users := user.NewService(user.NewPostgresRepo(pool, cfg.DBTimeout))
	librarian := ensureUser(ctx, users, logger, getEnv("SEED_LIBRARIAN_EMAIL", "librarian@example.com"), "librarian")
	reader := ensureUser(ctx, users, logger, getEnv("SEED_READER_EMAIL", "reader@example.com"), "reader")

	if err := user.NewPostgresRepo(pool, cfg.DBTimeout).GrantPermission(ctx, librarian.ID, auth.PermCanMarkReturned); err != nil {
		logger.Fatal("grant permission", zap.Error(err))
	}

	today := civil.DateOf(time.Now().In(cfg.Location))
	if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		return insertCatalog(ctx, tx, demoData(), librarian.ID, reader.ID, today)
	}); err != nil {
		logger.Fatal("seed catalog", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.String("librarian", librarian.Email),
		zap.String("reader", reader.Email),
	)
}

func ensureUser(ctx context.Context, users *user.Service, logger *zap.Logger, email, username string) user.User {
	u, err := users.Register(ctx, email, username, getEnv("SEED_PASSWORD", "Library123!"))
	if errors.Is(err, user.ErrAlreadyExists) {
		u, err = users.GetByEmail(ctx, email)
	}
	if err != nil {
		logger.Fatal("seed user", zap.String("email", email), zap.Error(err))
	}
	return u
}

func insertCatalog(ctx context.Context, tx pgx.Tx, data dataset, librarianID, readerID string, today civil.Date) error {
	genreIDs := make(map[string]int64, len(data.Genres))
	for _, name := range data.Genres {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO genres (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("genre %q: %w", name, err)
		}
		genreIDs[name] = id
	}

	authorIDs := make([]int64, len(data.Authors))
	for i, a := range data.Authors {
		err := tx.QueryRow(ctx, `
			INSERT INTO authors (first_name, last_name, date_of_birth, date_of_death, created_by)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			a.FirstName, a.LastName, pgdate.ToPG(a.Born), pgdate.ToPG(a.Died), librarianID,
		).Scan(&authorIDs[i])
		if err != nil {
			return fmt.Errorf("author %s %s: %w", a.FirstName, a.LastName, err)
		}
	}

	for _, b := range data.Books {
		var bookID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO books (title, author_id, summary, isbn, created_by)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (isbn) DO NOTHING
			RETURNING id`,
			b.Title, authorIDs[b.Author], b.Summary, b.ISBN, librarianID,
		).Scan(&bookID)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("book %q: %w", b.Title, err)
		}

		batch := &pgx.Batch{}
		for _, g := range b.Genres {
			batch.Queue(`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`, bookID, genreIDs[g])
		}
		for _, c := range b.Copies {
			var due *civil.Date
			var borrower *string
			if c.Status == "o" {
				d := today.AddDays(c.DueIn)
				due = &d
				if c.Borrowed {
					borrower = &readerID
				}
			}
			batch.Queue(`
				INSERT INTO book_instances (book_id, imprint, due_back, borrower_id, status)
				VALUES ($1, $2, $3, $4, $5)`,
				bookID, c.Imprint, pgdate.ToPG(due), borrower, c.Status,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("book %q relations: %w", b.Title, err)
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

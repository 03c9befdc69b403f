package genre

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=genre

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Genre, int, error)
	GetByID(ctx context.Context, id int64) (Genre, error)
	ListBooks(ctx context.Context, genreID int64) ([]BookSummary, error)
	ExistAll(ctx context.Context, ids []int64) (bool, error)
}

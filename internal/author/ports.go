package author

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=author

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Author, int, error)
	GetByID(ctx context.Context, id int64) (Author, error)
	ListBooks(ctx context.Context, authorID int64) ([]BookSummary, error)
	Create(ctx context.Context, a *Author) error
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id int64) error
}

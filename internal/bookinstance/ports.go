package bookinstance

import (
	"context"

	"cloud.google.com/go/civil"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=bookinstance

type Repository interface {
	GetByID(ctx context.Context, id string) (BookInstance, error)
	UpdateDueBack(ctx context.Context, id string, dueBack civil.Date) error
	List(ctx context.Context, q Query) ([]BookInstance, int, error)
}

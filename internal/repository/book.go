package repository

import (
	"context"

	"bookstore/internal/domain"
)

// BookRepository exposes read access to the catalog.
type BookRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, book *domain.Book) (int64, error)
	ListVisible(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Count(ctx context.Context) (int64, error)
}

// OrderRepository exposes the aggregate views the admin summary needs.
type OrderRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, order *domain.Order) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumTotalPrice(ctx context.Context) (float64, error)
}

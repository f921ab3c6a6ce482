package repository

import (
	"context"

	"bookstore/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Search(ctx context.Context, term string) ([]domain.User, error)
	Update(ctx context.Context, id int64, username string, email *string, role string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

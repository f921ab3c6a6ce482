package service

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

// ErrBookNotFound indicates the referenced book id does not exist.
var ErrBookNotFound = errors.New("book not found")

// CatalogService exposes the public catalog views.
type CatalogService interface {
	ListVisible(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
}

type catalogService struct {
	books repository.BookRepository
}

func NewCatalogService(books repository.BookRepository) CatalogService {
	return &catalogService{books: books}
}

func (s *catalogService) ListVisible(ctx context.Context) ([]domain.Book, error) {
	return s.books.ListVisible(ctx)
}

func (s *catalogService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

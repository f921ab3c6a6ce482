package service

import (
	"context"

	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

// SummaryService assembles the admin dashboard snapshot.
type SummaryService interface {
	Summarize(ctx context.Context) (*domain.Summary, error)
}

type summaryService struct {
	users  repository.UserRepository
	books  repository.BookRepository
	orders repository.OrderRepository
}

func NewSummaryService(users repository.UserRepository, books repository.BookRepository, orders repository.OrderRepository) SummaryService {
	return &summaryService{
		users:  users,
		books:  books,
		orders: orders,
	}
}

// Summarize runs the four aggregates in order, aborting on the first failure.
// The queries share no transaction or snapshot: writes landing between them
// can skew the fields against each other, which the dashboard accepts.
func (s *summaryService) Summarize(ctx context.Context) (*domain.Summary, error) {
	var summary domain.Summary

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.UserCount = userCount

	bookCount, err := s.books.Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.ProductCount = bookCount

	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	summary.OrderCount = orderCount

	revenue, err := s.orders.SumTotalPrice(ctx)
	if err != nil {
		return nil, err
	}
	summary.TotalRevenue = revenue

	return &summary, nil
}

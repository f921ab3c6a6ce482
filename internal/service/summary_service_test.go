package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
)

type stubBookRepo struct {
	count    int64
	countErr error
	called   *[]string
}

func (r *stubBookRepo) Init(ctx context.Context) error { return nil }
func (r *stubBookRepo) Create(ctx context.Context, book *domain.Book) (int64, error) {
	return 0, nil
}
func (r *stubBookRepo) ListVisible(ctx context.Context) ([]domain.Book, error) { return nil, nil }
func (r *stubBookRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return nil, errors.New("book not found")
}
func (r *stubBookRepo) Count(ctx context.Context) (int64, error) {
	if r.called != nil {
		*r.called = append(*r.called, "books")
	}
	return r.count, r.countErr
}

type stubOrderRepo struct {
	count  int64
	sum    float64
	sumErr error
	called *[]string
}

func (r *stubOrderRepo) Init(ctx context.Context) error { return nil }
func (r *stubOrderRepo) Create(ctx context.Context, order *domain.Order) (int64, error) {
	return 0, nil
}
func (r *stubOrderRepo) Count(ctx context.Context) (int64, error) {
	if r.called != nil {
		*r.called = append(*r.called, "orders")
	}
	return r.count, nil
}
func (r *stubOrderRepo) SumTotalPrice(ctx context.Context) (float64, error) {
	if r.called != nil {
		*r.called = append(*r.called, "revenue")
	}
	return r.sum, r.sumErr
}

type countingUserRepo struct {
	*memUserRepo
	count    int64
	countErr error
	called   *[]string
}

func (r *countingUserRepo) Count(ctx context.Context) (int64, error) {
	if r.called != nil {
		*r.called = append(*r.called, "users")
	}
	return r.count, r.countErr
}

func TestSummaryService_AssemblesAllFour(t *testing.T) {
	var calls []string
	svc := NewSummaryService(
		&countingUserRepo{memUserRepo: newMemUserRepo(), count: 3, called: &calls},
		&stubBookRepo{count: 5, called: &calls},
		&stubOrderRepo{count: 2, sum: 150, called: &calls},
	)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.UserCount)
	assert.Equal(t, int64(5), summary.ProductCount)
	assert.Equal(t, int64(2), summary.OrderCount)
	assert.Equal(t, float64(150), summary.TotalRevenue)
	assert.Equal(t, []string{"users", "books", "orders", "revenue"}, calls)
}

func TestSummaryService_ZeroOrdersMeansZeroRevenue(t *testing.T) {
	svc := NewSummaryService(
		&countingUserRepo{memUserRepo: newMemUserRepo()},
		&stubBookRepo{},
		&stubOrderRepo{},
	)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.OrderCount)
	assert.Equal(t, float64(0), summary.TotalRevenue)
}

func TestSummaryService_FirstFailureAborts(t *testing.T) {
	var calls []string
	boom := errors.New("count users: disk I/O error")
	svc := NewSummaryService(
		&countingUserRepo{memUserRepo: newMemUserRepo(), countErr: boom, called: &calls},
		&stubBookRepo{count: 5, called: &calls},
		&stubOrderRepo{count: 2, sum: 150, called: &calls},
	)

	summary, err := svc.Summarize(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, summary)
	// no partial results: later aggregates never run after the first failure
	assert.Equal(t, []string{"users"}, calls)
}

func TestSummaryService_RevenueFailureAborts(t *testing.T) {
	boom := errors.New("sum order totals: disk I/O error")
	svc := NewSummaryService(
		&countingUserRepo{memUserRepo: newMemUserRepo(), count: 1},
		&stubBookRepo{count: 1},
		&stubOrderRepo{count: 1, sumErr: boom},
	)

	summary, err := svc.Summarize(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, summary)
}

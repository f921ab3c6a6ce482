package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
)

func newOrderFixture(t *testing.T) (*OrderRepository, int64, context.Context) {
	t.Helper()
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	require.NoError(t, users.Init(ctx))
	userID, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)

	repo := NewOrderRepository(db).(*OrderRepository)
	require.NoError(t, repo.Init(ctx))
	return repo, userID, ctx
}

func TestOrderRepository_SumEmptyTableIsZero(t *testing.T) {
	repo, _, ctx := newOrderFixture(t)

	total, err := repo.SumTotalPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(0), total)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderRepository_CountAndSum(t *testing.T) {
	repo, userID, ctx := newOrderFixture(t)

	_, err := repo.Create(ctx, &domain.Order{UserID: userID, TotalPrice: 100})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Order{UserID: userID, TotalPrice: 50})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := repo.SumTotalPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(150), total)
}

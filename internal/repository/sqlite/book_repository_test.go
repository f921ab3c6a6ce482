package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
)

func TestBookRepository_ListVisibleFiltersHidden(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.Book{Title: "Dế Mèn Phiêu Lưu Ký", Author: "Tô Hoài", Price: 45000, Visible: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Book{Title: "Draft", Visible: false})
	require.NoError(t, err)

	books, err := repo.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dế Mèn Phiêu Lưu Ký", books[0].Title)
	assert.Equal(t, float64(45000), books[0].Price)
}

func TestBookRepository_GetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	id, err := repo.Create(ctx, &domain.Book{Title: "Hidden", Visible: false})
	require.NoError(t, err)

	// hidden books stay reachable by id
	book, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hidden", book.Title)
	assert.False(t, book.Visible)

	_, err = repo.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBookRepository_Count(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.Book{Title: "A", Visible: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Book{Title: "B", Visible: false})
	require.NoError(t, err)

	// counts include hidden books
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

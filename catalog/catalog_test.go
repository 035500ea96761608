package catalog

import (
	"context"
	"testing"

	"novelnook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listBooks(t *testing.T, store Store, q Query) []models.Book {
	t.Helper()
	books, err := store.List(context.Background(), q)
	require.NoError(t, err)
	return books
}

func TestFindByID(t *testing.T) {
	store := NewMemoryStore()

	book, err := store.FindByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Project Hail Mary", book.Title)
	assert.Equal(t, 26.99, book.Price)

	_, err = store.FindByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestSeedDataIntegrity(t *testing.T) {
	require.Len(t, seedBooks, 8)
	seen := make(map[string]bool)
	for _, b := range seedBooks {
		assert.False(t, seen[b.BookID], "duplicate book id %s", b.BookID)
		seen[b.BookID] = true
		assert.NotEmpty(t, b.Title)
		assert.Greater(t, b.Price, 0.0)
		assert.Contains(t, Categories, b.Category)
	}
}

func TestListCategoryFilter(t *testing.T) {
	store := NewMemoryStore()

	fiction := listBooks(t, store, Query{Category: "Fiction"})
	require.NotEmpty(t, fiction)
	for _, b := range fiction {
		assert.Equal(t, "Fiction", b.Category)
	}

	// "All" and empty behave the same.
	assert.Len(t, listBooks(t, store, Query{Category: "All"}), len(listBooks(t, store, Query{})))
}

func TestListSearch(t *testing.T) {
	store := NewMemoryStore()

	byAuthor := listBooks(t, store, Query{Search: "andy weir"})
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "7", byAuthor[0].BookID)

	byTitle := listBooks(t, store, Query{Search: "MIDNIGHT"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, "1", byTitle[0].BookID)

	assert.Empty(t, listBooks(t, store, Query{Search: "no such book"}))
}

func TestListFeatured(t *testing.T) {
	store := NewMemoryStore()

	featured := listBooks(t, store, Query{Featured: true})
	require.NotEmpty(t, featured)
	for _, b := range featured {
		assert.True(t, b.Featured)
	}
}

func TestListSorting(t *testing.T) {
	store := NewMemoryStore()

	byPrice := listBooks(t, store, Query{SortBy: "price"})
	for i := 1; i < len(byPrice); i++ {
		assert.LessOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	byRatingDesc := listBooks(t, store, Query{SortBy: "rating", Desc: true})
	for i := 1; i < len(byRatingDesc); i++ {
		assert.GreaterOrEqual(t, byRatingDesc[i-1].Rating, byRatingDesc[i].Rating)
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()

	first := listBooks(t, store, Query{})
	require.NotEmpty(t, first)
	first[0].Title = "scribbled over"

	second := listBooks(t, store, Query{})
	assert.NotEqual(t, "scribbled over", second[0].Title)
}

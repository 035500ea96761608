package catalog

import (
	"context"
	"errors"

	"novelnook/models"
)

// ErrBookNotFound marks a lookup for a book id the catalog doesn't hold.
var ErrBookNotFound = errors.New("book not found")

// Store is the persistence boundary for catalog records. The Mongo
// store backs the live service; the memory store backs tests.
type Store interface {
	// List returns the books matching the query; callers get a fresh
	// slice and can't mutate the stored records.
	List(ctx context.Context, q Query) ([]models.Book, error)
	FindByID(ctx context.Context, id string) (models.Book, error)
}

// MemoryStore serves the canonical records straight from memory.
type MemoryStore struct {
	books []models.Book
}

func NewMemoryStore() *MemoryStore {
	books := make([]models.Book, len(seedBooks))
	copy(books, seedBooks)
	return &MemoryStore{books: books}
}

func (s *MemoryStore) List(_ context.Context, q Query) ([]models.Book, error) {
	return applyQuery(s.books, q), nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (models.Book, error) {
	for _, b := range s.books {
		if b.BookID == id {
			return b, nil
		}
	}
	return models.Book{}, ErrBookNotFound
}

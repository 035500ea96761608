package cart

import (
	"context"
	"sort"
	"sync"

	"novelnook/models"
)

// Store is the persistence boundary for cart lines. The Mongo store
// backs the live service; the memory store backs tests.
type Store interface {
	// Increment adds delta to the line's quantity, inserting the line
	// (with the given snapshot fields) when absent.
	Increment(ctx context.Context, item models.CartItem, delta int) error
	// SetQuantity overwrites the line's quantity; no-op when absent.
	SetQuantity(ctx context.Context, userID, bookID string, quantity int) error
	Remove(ctx context.Context, userID, bookID string) error
	Clear(ctx context.Context, userID string) error
	List(ctx context.Context, userID string) ([]models.CartItem, error)
}

// MemoryStore keeps carts in a map, keyed by user then book.
type MemoryStore struct {
	mu    sync.Mutex
	lines map[string]map[string]models.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lines: make(map[string]map[string]models.CartItem)}
}

func (s *MemoryStore) Increment(_ context.Context, item models.CartItem, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byBook, ok := s.lines[item.UserID]
	if !ok {
		byBook = make(map[string]models.CartItem)
		s.lines[item.UserID] = byBook
	}
	if existing, ok := byBook[item.BookID]; ok {
		existing.Quantity += delta
		byBook[item.BookID] = existing
		return nil
	}
	item.Quantity = delta
	byBook[item.BookID] = item
	return nil
}

func (s *MemoryStore) SetQuantity(_ context.Context, userID, bookID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line, ok := s.lines[userID][bookID]; ok {
		line.Quantity = quantity
		s.lines[userID][bookID] = line
	}
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, userID, bookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines[userID], bookID)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, userID)
	return nil
}

func (s *MemoryStore) List(_ context.Context, userID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, 0, len(s.lines[userID]))
	for _, line := range s.lines[userID] {
		items = append(items, line)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].BookID < items[j].BookID })
	return items, nil
}

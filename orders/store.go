package orders

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"novelnook/models"
)

// Query narrows the admin listing.
type Query struct {
	Search string // matched against order id, customer name, customer email
	Status string // "" or "all" disables the filter
	Asc    bool   // oldest-first when true; default newest-first
}

// Store is the persistence boundary for orders. UpdateStatus is a
// check-and-set: it only writes when the stored status still equals
// from, so concurrent writers can't stomp each other's transition.
type Store interface {
	Insert(ctx context.Context, order models.Order) error
	FindByID(ctx context.Context, orderID string) (models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to Status, at time.Time) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context, q Query) ([]models.Order, error)
}

// MemoryStore keeps orders in a map under a mutex.
type MemoryStore struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]models.Order)}
}

func (s *MemoryStore) Insert(_ context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.OrderID] = order
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, orderID string, from, to Status, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if Status(order.Status) != from {
		return ErrConflictingUpdate
	}
	order.Status = string(to)
	order.UpdatedAt = at
	s.orders[orderID] = order
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) ListAll(_ context.Context, q Query) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if q.Status != "" && q.Status != "all" && o.Status != q.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(o.OrderID), needle) &&
			!strings.Contains(strings.ToLower(o.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), needle) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if q.Asc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

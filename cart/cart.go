// Package cart is the per-user cart aggregate: one line per book,
// adding an existing book increments its quantity, totals derived on
// every read.
package cart

import (
	"context"

	"novelnook/models"
	"novelnook/totals"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddItem inserts a line with quantity 1, or increments the line's
// quantity when the book is already in the cart.
func (s *Service) AddItem(ctx context.Context, userID string, book models.Book) error {
	return s.store.Increment(ctx, models.CartItem{
		UserID:     userID,
		BookID:     book.BookID,
		Title:      book.Title,
		Price:      book.Price,
		CoverImage: book.CoverImage,
	}, 1)
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the
// line, matching the storefront's stepper behavior.
func (s *Service) UpdateQuantity(ctx context.Context, userID, bookID string, quantity int) error {
	if quantity <= 0 {
		return s.store.Remove(ctx, userID, bookID)
	}
	return s.store.SetQuantity(ctx, userID, bookID, quantity)
}

// RemoveItem deletes a line; removing an absent line is not an error.
func (s *Service) RemoveItem(ctx context.Context, userID, bookID string) error {
	return s.store.Remove(ctx, userID, bookID)
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.store.Clear(ctx, userID)
}

// View returns the cart lines plus the derived item count and
// subtotal.
func (s *Service) View(ctx context.Context, userID string) (models.CartView, error) {
	items, err := s.store.List(ctx, userID)
	if err != nil {
		return models.CartView{}, err
	}
	if items == nil {
		items = []models.CartItem{}
	}

	view := models.CartView{Items: items}
	for _, it := range items {
		view.TotalItems += it.Quantity
		view.Subtotal += float64(it.Quantity) * it.Price
	}
	view.Subtotal = totals.Round2(view.Subtotal)
	return view, nil
}

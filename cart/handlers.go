package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"novelnook/catalog"
	"novelnook/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers exposes the cart service over HTTP. Added books are
// resolved against the catalog so every line carries a snapshot of
// the title and price at add time.
type Handlers struct {
	svc   *Service
	books catalog.Store
}

func NewHandlers(svc *Service, books catalog.Store) *Handlers {
	return &Handlers{svc: svc, books: books}
}

// AddToCart increments quantity if the book is already in the cart,
// or inserts a new line with quantity 1.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		BookID string `json:"bookId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// Must be logged in
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	book, err := h.books.FindByID(ctx, payload.BookID)
	if errors.Is(err, catalog.ErrBookNotFound) {
		http.Error(w, "Book not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("AddToCart book lookup error:", err)
		http.Error(w, "Could not load book", http.StatusInternalServerError)
		return
	}

	if err := h.svc.AddItem(ctx, userID, book); err != nil {
		log.Println("AddToCart error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// GetCart returns the user's lines plus derived count and subtotal.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.svc.View(ctx, userID)
	if err != nil {
		log.Println("GetCart error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, view)
}

// UpdateQuantity sets a line's quantity; zero or less removes it.
func (h *Handlers) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity == nil {
		http.Error(w, "Quantity is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateQuantity(ctx, userID, ps.ByName("bookid"), *payload.Quantity); err != nil {
		log.Println("UpdateQuantity error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveFromCart deletes a line; absent lines are a no-op.
func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.svc.RemoveItem(ctx, userID, ps.ByName("bookid")); err != nil {
		log.Println("RemoveFromCart error:", err)
		http.Error(w, "Failed to remove item", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ClearCart empties the cart.
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.svc.Clear(ctx, userID); err != nil {
		log.Println("ClearCart error:", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

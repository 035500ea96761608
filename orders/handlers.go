package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"novelnook/cart"
	"novelnook/models"
	"novelnook/utils"

	"github.com/julienschmidt/httprouter"
)

// UserDirectory resolves the identity snapshot stamped onto a new
// order.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
}

type Handlers struct {
	engine *Engine
	carts  *cart.Service
	users  UserDirectory
}

func NewHandlers(engine *Engine, carts *cart.Service, users UserDirectory) *Handlers {
	return &Handlers{engine: engine, carts: carts, users: users}
}

type checkoutPayload struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	ShippingMethod  string                 `json:"shippingMethod"`
}

// Checkout places an order from the user's current cart and clears
// the cart on success.
func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload checkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("Checkout decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		log.Println("Checkout user lookup error:", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.carts.View(ctx, userID)
	if err != nil {
		log.Println("Checkout cart read error:", err)
		http.Error(w, "Could not read cart", http.StatusInternalServerError)
		return
	}

	order, err := h.engine.CreateOrder(ctx, Customer{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}, view.Items, payload.ShippingAddress, payload.ShippingMethod)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	// The order snapshot is committed; an unlucky cart clear leaves a
	// stale cart, never a broken order.
	if err := h.carts.Clear(ctx, userID); err != nil {
		log.Println("Checkout cart cleanup error:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetMyOrders lists the caller's orders, newest first.
func (h *Handlers) GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.engine.ListOrdersForUser(ctx, userID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder returns one order to its owner or an admin.
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.engine.GetOrder(ctx, ps.ByName("orderid"), utils.GetUserIDFromRequest(r))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// CancelOrder cancels the caller's order while it is still pending or
// processing.
func (h *Handlers) CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.engine.CancelOrder(ctx, ps.ByName("orderid"), utils.GetUserIDFromRequest(r))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// writeEngineError maps engine errors onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, "Invalid status transition", http.StatusConflict)
	case errors.Is(err, ErrConflictingUpdate):
		http.Error(w, "Order was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("orders error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

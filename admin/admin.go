// Package admin is the order-management surface: every order, with
// free-text search, status filter and date ordering, plus status
// transitions.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"novelnook/models"
	"novelnook/orders"
	"novelnook/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	engine *orders.Engine
}

func NewHandlers(engine *orders.Engine) *Handlers {
	return &Handlers{engine: engine}
}

// GetAllOrders lists every order. Supports ?search= (order id,
// customer name, customer email), ?status=, ?sort=oldest|newest.
func (h *Handlers) GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	qs := r.URL.Query()
	list, err := h.engine.ListAllOrders(ctx, utils.GetUserIDFromRequest(r), orders.Query{
		Search: qs.Get("search"),
		Status: qs.Get("status"),
		Asc:    qs.Get("sort") == "oldest",
	})
	if err != nil {
		writeAdminError(w, err)
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// UpdateOrderStatus moves an order along the lifecycle.
func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		http.Error(w, "Status is required", http.StatusBadRequest)
		return
	}

	order, err := h.engine.UpdateOrderStatus(ctx, ps.ByName("orderid"),
		orders.Status(payload.Status), utils.GetUserIDFromRequest(r))
	if err != nil {
		writeAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, orders.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, orders.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, orders.ErrInvalidTransition):
		http.Error(w, "Invalid status transition", http.StatusConflict)
	case errors.Is(err, orders.ErrConflictingUpdate):
		http.Error(w, "Order was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, orders.ErrValidation):
		http.Error(w, "Invalid status", http.StatusBadRequest)
	default:
		log.Println("admin orders error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Package orders is the order lifecycle engine: it turns a cart
// snapshot into a frozen order record and governs every status
// transition afterwards, for customers and administrators alike.
package orders

import (
	"context"
	"time"

	"novelnook/models"
	"novelnook/totals"

	"github.com/google/uuid"
)

// Identity answers authorization questions for the engine. The auth
// package provides the live implementation.
type Identity interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Customer is the identity snapshot stamped onto a new order.
type Customer struct {
	UserID string
	Name   string
	Email  string
}

type Engine struct {
	store    Store
	identity Identity
	now      func() time.Time
}

func NewEngine(store Store, identity Identity) *Engine {
	return &Engine{store: store, identity: identity, now: time.Now}
}

// CreateOrder converts the cart lines into a persisted order. Prices,
// titles and totals are frozen here; later catalog or cart changes
// never touch the record. Clearing the originating cart is left to
// the caller.
func (e *Engine) CreateOrder(ctx context.Context, cust Customer, lines []models.CartItem, addr models.ShippingAddress, method string) (models.Order, error) {
	if cust.UserID == "" {
		return models.Order{}, ErrUnauthenticated
	}
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" {
		return models.Order{}, ErrValidation
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 || line.Price <= 0 {
			return models.Order{}, ErrValidation
		}
		subtotal += float64(line.Quantity) * line.Price
		items = append(items, models.OrderItem{
			BookID:     line.BookID,
			Title:      line.Title,
			Price:      line.Price,
			Quantity:   line.Quantity,
			CoverImage: line.CoverImage,
		})
	}

	breakdown, err := totals.Compute(subtotal, method)
	if err != nil {
		return models.Order{}, ErrValidation
	}

	now := e.now()
	order := models.Order{
		OrderID:         uuid.NewString(),
		UserID:          cust.UserID,
		CustomerName:    cust.Name,
		CustomerEmail:   cust.Email,
		Items:           items,
		ShippingAddress: addr,
		ShippingMethod:  method,
		Subtotal:        breakdown.Subtotal,
		Tax:             breakdown.Tax,
		ShippingCost:    breakdown.ShippingCost,
		Total:           breakdown.Total,
		Status:          string(StatusPending),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := e.store.Insert(ctx, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// GetOrder returns an order to its owner or an administrator.
func (e *Engine) GetOrder(ctx context.Context, orderID, actingUserID string) (models.Order, error) {
	if actingUserID == "" {
		return models.Order{}, ErrUnauthenticated
	}
	order, err := e.store.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != actingUserID {
		admin, err := e.identity.IsAdmin(ctx, actingUserID)
		if err != nil {
			return models.Order{}, err
		}
		if !admin {
			return models.Order{}, ErrForbidden
		}
	}
	return order, nil
}

// CancelOrder moves an order to cancelled. Customers may cancel their
// own orders while still pending or processing; administrators may
// cancel any order that hasn't been delivered.
func (e *Engine) CancelOrder(ctx context.Context, orderID, actingUserID string) (models.Order, error) {
	if actingUserID == "" {
		return models.Order{}, ErrUnauthenticated
	}
	order, err := e.store.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	admin, err := e.identity.IsAdmin(ctx, actingUserID)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != actingUserID && !admin {
		return models.Order{}, ErrForbidden
	}

	from := Status(order.Status)
	if admin {
		if !CanAdminTransition(from, StatusCancelled) {
			return models.Order{}, ErrInvalidTransition
		}
	} else if !CanCustomerCancel(from) {
		return models.Order{}, ErrInvalidTransition
	}

	now := e.now()
	if err := e.store.UpdateStatus(ctx, orderID, from, StatusCancelled, now); err != nil {
		return models.Order{}, err
	}
	order.Status = string(StatusCancelled)
	order.UpdatedAt = now
	return order, nil
}

// UpdateOrderStatus is the administrator transition. The target must
// be reachable from the status the admin last observed; a concurrent
// writer that got there first turns into ErrConflictingUpdate.
func (e *Engine) UpdateOrderStatus(ctx context.Context, orderID string, newStatus Status, actingUserID string) (models.Order, error) {
	if actingUserID == "" {
		return models.Order{}, ErrUnauthenticated
	}
	admin, err := e.identity.IsAdmin(ctx, actingUserID)
	if err != nil {
		return models.Order{}, err
	}
	if !admin {
		return models.Order{}, ErrForbidden
	}
	if !ValidStatus(newStatus) {
		return models.Order{}, ErrValidation
	}

	order, err := e.store.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}

	from := Status(order.Status)
	if !CanAdminTransition(from, newStatus) {
		return models.Order{}, ErrInvalidTransition
	}

	now := e.now()
	if err := e.store.UpdateStatus(ctx, orderID, from, newStatus, now); err != nil {
		return models.Order{}, err
	}
	order.Status = string(newStatus)
	order.UpdatedAt = now
	return order, nil
}

// ListOrdersForUser returns the user's orders, newest first.
func (e *Engine) ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return e.store.ListByUser(ctx, userID)
}

// ListAllOrders is the administrator view with free-text, status and
// date-order filters.
func (e *Engine) ListAllOrders(ctx context.Context, actingUserID string, q Query) ([]models.Order, error) {
	admin, err := e.identity.IsAdmin(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, ErrForbidden
	}
	if q.Status != "" && q.Status != "all" && !ValidStatus(Status(q.Status)) {
		return nil, ErrValidation
	}
	return e.store.ListAll(ctx, q)
}

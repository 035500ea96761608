package orders

import "errors"

var (
	ErrUnauthenticated   = errors.New("authentication required")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("not allowed to act on this order")
	ErrConflictingUpdate = errors.New("order was modified concurrently")
	ErrValidation        = errors.New("invalid order input")
)

package orders

// Status is an order's lifecycle state. Pending is the sole initial
// state; delivered and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// adminEdges holds every transition an administrator may perform.
// Setting the current status again is deliberately absent: a
// same-status update is rejected rather than silently accepted.
var adminEdges = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusDelivered, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// ValidStatus reports whether s names a known lifecycle state.
func ValidStatus(s Status) bool {
	_, ok := adminEdges[s]
	return ok
}

// CanAdminTransition reports whether an administrator may move an
// order from one status to another.
func CanAdminTransition(from, to Status) bool {
	for _, next := range adminEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanCustomerCancel reports whether the owning customer may still
// cancel: only before the order ships.
func CanCustomerCancel(from Status) bool {
	return from == StatusPending || from == StatusProcessing
}

// Terminal reports whether no further transition is permitted.
func Terminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

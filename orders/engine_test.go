package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"novelnook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	admins map[string]bool
}

func (f fakeIdentity) IsAdmin(_ context.Context, userID string) (bool, error) {
	return f.admins[userID], nil
}

func newTestEngine(admins ...string) (*Engine, *MemoryStore, *time.Time) {
	store := NewMemoryStore()
	ident := fakeIdentity{admins: make(map[string]bool)}
	for _, a := range admins {
		ident.admins[a] = true
	}
	engine := NewEngine(store, ident)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return now }
	return engine, store, &now
}

func sampleCart() []models.CartItem {
	return []models.CartItem{
		{BookID: "7", Title: "Project Hail Mary", Price: 26.99, Quantity: 2, CoverImage: "cover7"},
	}
}

func sampleAddress() models.ShippingAddress {
	return models.ShippingAddress{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704"}
}

func mustCreate(t *testing.T, e *Engine) models.Order {
	t.Helper()
	order, err := e.CreateOrder(context.Background(), Customer{
		UserID: "u1", Name: "Alice Reader", Email: "alice@example.com",
	}, sampleCart(), sampleAddress(), "express")
	require.NoError(t, err)
	return order
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	engine, _, _ := newTestEngine()
	_, err := engine.CreateOrder(context.Background(), Customer{}, sampleCart(), sampleAddress(), "standard")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	engine, store, _ := newTestEngine()
	_, err := engine.CreateOrder(context.Background(), Customer{UserID: "u1"}, nil, sampleAddress(), "standard")
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Nothing leaked into the collection.
	all, err := store.ListAll(context.Background(), Query{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateOrderValidation(t *testing.T) {
	engine, _, _ := newTestEngine()

	addr := sampleAddress()
	addr.City = ""
	_, err := engine.CreateOrder(context.Background(), Customer{UserID: "u1"}, sampleCart(), addr, "standard")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = engine.CreateOrder(context.Background(), Customer{UserID: "u1"}, sampleCart(), sampleAddress(), "teleport")
	assert.ErrorIs(t, err, ErrValidation)

	bad := sampleCart()
	bad[0].Quantity = 0
	_, err = engine.CreateOrder(context.Background(), Customer{UserID: "u1"}, bad, sampleAddress(), "standard")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderFreezesSnapshotAndTotals(t *testing.T) {
	engine, store, _ := newTestEngine()
	order := mustCreate(t, engine)

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, string(StatusPending), order.Status)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.Equal(t, "Alice Reader", order.CustomerName)
	assert.Equal(t, "alice@example.com", order.CustomerEmail)

	assert.Equal(t, 53.98, order.Subtotal)
	assert.Equal(t, 5.40, order.Tax)
	assert.Equal(t, 10.00, order.ShippingCost)
	assert.Equal(t, 69.38, order.Total)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "7", order.Items[0].BookID)
	assert.Equal(t, 26.99, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)

	stored, err := store.FindByID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestCustomerCancelPendingOrder(t *testing.T) {
	engine, store, now := newTestEngine()
	order := mustCreate(t, engine)

	*now = now.Add(time.Hour)
	cancelled, err := engine.CancelOrder(context.Background(), order.OrderID, "u1")
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), cancelled.Status)
	assert.True(t, cancelled.UpdatedAt.After(cancelled.CreatedAt))

	stored, err := store.FindByID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), stored.Status)
}

func TestCancelUnknownOrder(t *testing.T) {
	engine, _, _ := newTestEngine()
	_, err := engine.CancelOrder(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelForbiddenForStranger(t *testing.T) {
	engine, store, _ := newTestEngine()
	order := mustCreate(t, engine)

	_, err := engine.CancelOrder(context.Background(), order.OrderID, "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := store.FindByID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, string(StatusPending), stored.Status)
}

func TestCustomerCannotCancelShippedOrder(t *testing.T) {
	engine, store, now := newTestEngine("adm")
	order := mustCreate(t, engine)

	_, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusShipped, "adm")
	require.NoError(t, err)
	before, err := store.FindByID(context.Background(), order.OrderID)
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	_, err = engine.CancelOrder(context.Background(), order.OrderID, "u1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	after, err := store.FindByID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestAdminCanCancelShippedOrder(t *testing.T) {
	engine, _, _ := newTestEngine("adm")
	order := mustCreate(t, engine)

	_, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusShipped, "adm")
	require.NoError(t, err)

	cancelled, err := engine.CancelOrder(context.Background(), order.OrderID, "adm")
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), cancelled.Status)
}

func TestCancelledOrderIsTerminal(t *testing.T) {
	engine, _, _ := newTestEngine("adm")
	order := mustCreate(t, engine)

	_, err := engine.CancelOrder(context.Background(), order.OrderID, "u1")
	require.NoError(t, err)

	_, err = engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusShipped, "adm")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = engine.CancelOrder(context.Background(), order.OrderID, "u1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusAdminOnly(t *testing.T) {
	engine, _, _ := newTestEngine("adm")
	order := mustCreate(t, engine)

	// Not even the owner may drive the admin transitions.
	_, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusProcessing, "u1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatusAdvancesOrder(t *testing.T) {
	engine, _, now := newTestEngine("adm")
	order := mustCreate(t, engine)

	*now = now.Add(time.Hour)
	updated, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusProcessing, "adm")
	require.NoError(t, err)
	assert.Equal(t, string(StatusProcessing), updated.Status)
	assert.True(t, updated.UpdatedAt.After(order.CreatedAt))
}

func TestUpdateStatusRejectsBadInput(t *testing.T) {
	engine, _, _ := newTestEngine("adm")
	order := mustCreate(t, engine)

	_, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, Status("lost"), "adm")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = engine.UpdateOrderStatus(context.Background(), "nope", StatusShipped, "adm")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// TestAdminTransitionTable walks every (from, to) pair and checks the
// outcome against the lifecycle table, including same-status updates
// being rejected.
func TestAdminTransitionTable(t *testing.T) {
	all := []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
	allowed := map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusDelivered, StatusCancelled},
		StatusShipped:    {StatusDelivered, StatusCancelled},
		StatusDelivered:  {},
		StatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			ok := false
			for _, next := range allowed[from] {
				if next == to {
					ok = true
				}
			}

			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				engine, store, _ := newTestEngine("adm")
				order := mustCreate(t, engine)
				// Drive the order to the starting status directly.
				require.NoError(t, store.UpdateStatus(context.Background(), order.OrderID, StatusPending, from, order.CreatedAt))

				_, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, to, "adm")
				if ok {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, ErrInvalidTransition)
					stored, ferr := store.FindByID(context.Background(), order.OrderID)
					require.NoError(t, ferr)
					assert.Equal(t, string(from), stored.Status)
				}
			})
		}
	}
}

// staleStore returns an outdated status from FindByID once, standing
// in for a writer that lost a race.
type staleStore struct {
	Store
	stale models.Order
	used  bool
}

func (s *staleStore) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	if !s.used {
		s.used = true
		return s.stale, nil
	}
	return s.Store.FindByID(ctx, orderID)
}

func TestConflictingUpdateLosesRace(t *testing.T) {
	engine, store, _ := newTestEngine("adm")
	order := mustCreate(t, engine)

	// Another writer moved the order to processing already.
	require.NoError(t, store.UpdateStatus(context.Background(), order.OrderID, StatusPending, StatusProcessing, order.CreatedAt))

	stale := order // still believes the order is pending
	engine.store = &staleStore{Store: store, stale: stale}

	_, err := engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusShipped, "adm")
	assert.ErrorIs(t, err, ErrConflictingUpdate)
}

func TestMemoryStoreCheckAndSet(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Insert(context.Background(), models.Order{OrderID: "o1", Status: string(StatusPending)}))

	err := store.UpdateStatus(context.Background(), "o1", StatusProcessing, StatusShipped, time.Now())
	assert.ErrorIs(t, err, ErrConflictingUpdate)

	err = store.UpdateStatus(context.Background(), "missing", StatusPending, StatusShipped, time.Now())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersForUserNewestFirst(t *testing.T) {
	engine, _, now := newTestEngine()

	first := mustCreate(t, engine)
	*now = now.Add(time.Hour)
	second := mustCreate(t, engine)

	list, err := engine.ListOrdersForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.OrderID, list[0].OrderID)
	assert.Equal(t, first.OrderID, list[1].OrderID)

	_, err = engine.ListOrdersForUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestListAllOrdersFilters(t *testing.T) {
	engine, _, now := newTestEngine("adm")

	first := mustCreate(t, engine)
	*now = now.Add(time.Hour)
	second, err := engine.CreateOrder(context.Background(), Customer{
		UserID: "u2", Name: "Bob Shopper", Email: "bob@example.com",
	}, sampleCart(), sampleAddress(), "standard")
	require.NoError(t, err)

	_, err = engine.UpdateOrderStatus(context.Background(), second.OrderID, StatusShipped, "adm")
	require.NoError(t, err)

	// Non-admins are refused.
	_, err = engine.ListAllOrders(context.Background(), "u1", Query{})
	assert.ErrorIs(t, err, ErrForbidden)

	// Default ordering is newest first.
	list, err := engine.ListAllOrders(context.Background(), "adm", Query{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.OrderID, list[0].OrderID)

	// Oldest first when asked.
	list, err = engine.ListAllOrders(context.Background(), "adm", Query{Asc: true})
	require.NoError(t, err)
	assert.Equal(t, first.OrderID, list[0].OrderID)

	// Free-text match against customer email.
	list, err = engine.ListAllOrders(context.Background(), "adm", Query{Search: "bob@"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.OrderID, list[0].OrderID)

	// Free-text match against order id.
	list, err = engine.ListAllOrders(context.Background(), "adm", Query{Search: first.OrderID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.OrderID, list[0].OrderID)

	// Status filter.
	list, err = engine.ListAllOrders(context.Background(), "adm", Query{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.OrderID, list[0].OrderID)

	// "all" disables the filter, unknown statuses are rejected.
	list, err = engine.ListAllOrders(context.Background(), "adm", Query{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = engine.ListAllOrders(context.Background(), "adm", Query{Status: "lost"})
	assert.ErrorIs(t, err, ErrValidation)
}

type downIdentity struct {
	err error
}

func (d downIdentity) IsAdmin(_ context.Context, _ string) (bool, error) {
	return false, d.err
}

func TestIdentityLookupErrorsPropagate(t *testing.T) {
	engine, store, _ := newTestEngine()
	order := mustCreate(t, engine)

	boom := errors.New("user lookup timed out")
	engine.identity = downIdentity{err: boom}

	// A broken identity store must never demote an admin to a
	// stranger; the caller sees the lookup failure itself.
	_, err := engine.CancelOrder(context.Background(), order.OrderID, "admin1")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrForbidden)

	_, err = engine.UpdateOrderStatus(context.Background(), order.OrderID, StatusShipped, "admin1")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrForbidden)

	_, err = engine.GetOrder(context.Background(), order.OrderID, "admin1")
	require.ErrorIs(t, err, boom)

	_, err = engine.ListAllOrders(context.Background(), "admin1", Query{})
	require.ErrorIs(t, err, boom)

	// The order itself is untouched.
	stored, err := store.FindByID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, string(StatusPending), stored.Status)
}

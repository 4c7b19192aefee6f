package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"grocery-api/models"
)

// ---- in-memory fakes ----

type fakeProducts struct {
	products map[primitive.ObjectID]*models.Product
}

func (f *fakeProducts) Get(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

type fakeCustomers struct {
	customers    map[primitive.ObjectID]*models.Customer
	dupEmailOnce bool
	statsCalls   int
}

func (f *fakeCustomers) FindByPhoneOrEmail(_ context.Context, phone, email string) (*models.Customer, error) {
	for _, c := range f.customers {
		if phone != "" && c.Phone == phone {
			return c, nil
		}
	}
	for _, c := range f.customers {
		if email != "" && c.Email == email {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCustomers) Create(_ context.Context, customer *models.Customer) error {
	if f.dupEmailOnce && customer.Email != "" {
		f.dupEmailOnce = false
		return ErrDuplicate
	}
	customer.ID = primitive.NewObjectID()
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomers) IncrementStats(_ context.Context, id primitive.ObjectID, orderTotal float64) error {
	c, ok := f.customers[id]
	if !ok {
		return ErrNotFound
	}
	c.TotalOrders++
	c.TotalSpent += orderTotal
	f.statsCalls++
	return nil
}

type fakeDrivers struct {
	drivers map[primitive.ObjectID]*models.Driver
}

func (f *fakeDrivers) FindByID(_ context.Context, id primitive.ObjectID) (*models.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (f *fakeDrivers) IncrementDeliveryStats(_ context.Context, id primitive.ObjectID, payRate, tip float64) error {
	d, ok := f.drivers[id]
	if !ok {
		return ErrNotFound
	}
	d.TotalDeliveries++
	d.Earnings += payRate + tip
	return nil
}

func (f *fakeDrivers) SetStatus(_ context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	d, ok := f.drivers[id]
	if !ok {
		return ErrNotFound
	}
	d.Status = status
	return nil
}

type fakePromos struct {
	promos    map[primitive.ObjectID]*models.PromoCode
	redeemErr error
}

func (f *fakePromos) FindByCode(_ context.Context, code string) (*models.PromoCode, error) {
	for _, p := range f.promos {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakePromos) Redeem(_ context.Context, promoID, customerID, orderID primitive.ObjectID, orderAmount float64) error {
	if f.redeemErr != nil {
		return f.redeemErr
	}
	p, ok := f.promos[promoID]
	if !ok {
		return ErrNotFound
	}
	p.UsageCount++
	p.UsedBy = append(p.UsedBy, models.PromoUsage{
		CustomerID:  customerID,
		OrderID:     orderID,
		UsedAt:      time.Now(),
		OrderAmount: orderAmount,
	})
	return nil
}

type fakeOrders struct {
	orders map[primitive.ObjectID]*models.Order
	stale  bool
}

func (f *fakeOrders) Insert(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrders) FindByNumber(_ context.Context, number string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeOrders) FindByCustomer(_ context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) FindByPhone(_ context.Context, phone string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.CustomerPhone == phone {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) List(_ context.Context, status *models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if status == nil || o.Status == *status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) cas(id primitive.ObjectID, from models.OrderStatus) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	if f.stale || o.Status != from {
		return nil, ErrStale
	}
	return o, nil
}

func (f *fakeOrders) Transition(_ context.Context, id primitive.ObjectID, from, to models.OrderStatus, entry models.StatusEntry) error {
	o, err := f.cas(id, from)
	if err != nil {
		return err
	}
	o.Status = to
	o.StatusHistory = append(o.StatusHistory, entry)
	return nil
}

func (f *fakeOrders) MarkDelivered(_ context.Context, id primitive.ObjectID, from models.OrderStatus, entry models.StatusEntry, at time.Time) error {
	o, err := f.cas(id, from)
	if err != nil {
		return err
	}
	o.Status = models.StatusDelivered
	o.Delivery.ActualTime = &at
	o.Payment.Status = models.PaymentCompleted
	o.StatusHistory = append(o.StatusHistory, entry)
	return nil
}

func (f *fakeOrders) MarkCancelled(_ context.Context, id primitive.ObjectID, from models.OrderStatus, entry models.StatusEntry, at time.Time, reason string) error {
	o, err := f.cas(id, from)
	if err != nil {
		return err
	}
	o.Status = models.StatusCancelled
	o.CancelledAt = &at
	o.CancelReason = reason
	o.StatusHistory = append(o.StatusHistory, entry)
	return nil
}

func (f *fakeOrders) AssignDriver(_ context.Context, id, driverID primitive.ObjectID, driverName string) error {
	o, ok := f.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Delivery.DriverID = &driverID
	o.Delivery.DriverName = driverName
	return nil
}

type fakeNotifier struct {
	created  []string
	statuses []models.OrderStatus
}

func (f *fakeNotifier) OrderCreated(order *models.Order) {
	f.created = append(f.created, order.OrderNumber)
}

func (f *fakeNotifier) StatusChanged(order *models.Order, newStatus models.OrderStatus) {
	f.statuses = append(f.statuses, newStatus)
}

// ---- fixtures ----

type testEnv struct {
	svc       *OrderService
	orders    *fakeOrders
	products  *fakeProducts
	customers *fakeCustomers
	drivers   *fakeDrivers
	promos    *fakePromos
	notifier  *fakeNotifier

	apples primitive.ObjectID
	soap   primitive.ObjectID
}

func newTestEnv() *testEnv {
	env := &testEnv{
		orders:    &fakeOrders{orders: map[primitive.ObjectID]*models.Order{}},
		products:  &fakeProducts{products: map[primitive.ObjectID]*models.Product{}},
		customers: &fakeCustomers{customers: map[primitive.ObjectID]*models.Customer{}},
		drivers:   &fakeDrivers{drivers: map[primitive.ObjectID]*models.Driver{}},
		promos:    &fakePromos{promos: map[primitive.ObjectID]*models.PromoCode{}},
		notifier:  &fakeNotifier{},
	}

	env.apples = primitive.NewObjectID()
	env.products.products[env.apples] = &models.Product{
		ID: env.apples, Name: "apples", Price: 3.99, Taxable: false, Status: "active", Stock: 100,
	}
	env.soap = primitive.NewObjectID()
	env.products.products[env.soap] = &models.Product{
		ID: env.soap, Name: "dish soap", Price: 5.00, Taxable: true, Status: "active", Stock: 100,
	}

	env.svc = NewOrderService(
		env.orders, env.products, env.customers, env.drivers, env.promos,
		NewPricingCalculator(0.084, 6.99),
		env.notifier,
	)
	return env
}

func (e *testEnv) baseRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Customer: CustomerInfo{
			Name:  "Pat Doe",
			Phone: "555-0101",
			Email: "pat@example.com",
			Address: models.Address{
				Street: "1 Main St", City: "Anchorage", State: "AK", ZipCode: "99501",
			},
		},
		Items: []ItemRequest{
			{ProductID: e.apples, Quantity: 2},
			{ProductID: e.soap, Quantity: 1},
		},
		PaymentMethod:  models.PaymentCash,
		TimePreference: "afternoon",
	}
}

func (e *testEnv) addPromo(promo *models.PromoCode) *models.PromoCode {
	promo.ID = primitive.NewObjectID()
	if promo.PerCustomerLimit == 0 {
		promo.PerCustomerLimit = 1
	}
	promo.ValidFrom = time.Now().Add(-time.Hour)
	promo.ValidUntil = time.Now().Add(time.Hour)
	promo.IsActive = true
	e.promos.promos[promo.ID] = promo
	return promo
}

// ---- creation ----

func TestCreateOrderSnapshotsCatalogPrices(t *testing.T) {
	env := newTestEnv()

	order, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "apples", order.Items[0].Name)
	assert.Equal(t, 3.99, order.Items[0].UnitPrice)
	assert.False(t, order.Items[0].Taxable)
	assert.True(t, order.Items[1].Taxable)

	assert.Equal(t, models.StatusPlaced, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.StatusPlaced, order.StatusHistory[0].Status)
	assert.Equal(t, models.PaymentPending, order.Payment.Status)
	assert.NotEmpty(t, order.OrderNumber)

	// Worked pricing: subtotal 12.98, taxable base 11.99, tax 1.01.
	assert.Equal(t, 12.98, order.Pricing.Subtotal)
	assert.Equal(t, 1.01, order.Pricing.Tax)
	assert.Equal(t, 20.98, order.Pricing.Total)

	assert.Equal(t, []string{order.OrderNumber}, env.notifier.created)
}

func TestCreateOrderCreatesAndCountsCustomer(t *testing.T) {
	env := newTestEnv()

	order, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	require.NoError(t, err)

	customer := env.customers.customers[order.CustomerID]
	require.NotNil(t, customer)
	assert.Equal(t, 1, customer.TotalOrders)
	assert.Equal(t, order.Pricing.Total, customer.TotalSpent)
	assert.Equal(t, 1, env.customers.statsCalls)
}

func TestCreateOrderReusesExistingCustomer(t *testing.T) {
	env := newTestEnv()

	first, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	require.NoError(t, err)
	second, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.Len(t, env.customers.customers, 1)
	assert.Equal(t, 2, env.customers.customers[first.CustomerID].TotalOrders)
}

func TestCreateOrderRetriesCustomerCreateWithoutEmail(t *testing.T) {
	env := newTestEnv()
	env.customers.dupEmailOnce = true

	order, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	require.NoError(t, err)

	customer := env.customers.customers[order.CustomerID]
	require.NotNil(t, customer)
	assert.Empty(t, customer.Email)
	assert.Equal(t, "555-0101", customer.Phone)
}

func TestCreateOrderRejectsMissingProduct(t *testing.T) {
	env := newTestEnv()
	req := env.baseRequest()
	req.Items = append(req.Items, ItemRequest{ProductID: primitive.NewObjectID(), Quantity: 1})

	_, err := env.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrProductUnavailable)
	assert.Empty(t, env.orders.orders, "nothing may be persisted on rejection")
}

func TestCreateOrderRejectsInactiveProduct(t *testing.T) {
	env := newTestEnv()
	env.products.products[env.soap].Status = "inactive"

	_, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	assert.ErrorIs(t, err, ErrProductUnavailable)
	assert.Empty(t, env.orders.orders)
}

func TestCreateOrderValidatesInput(t *testing.T) {
	env := newTestEnv()

	req := env.baseRequest()
	req.Customer.Phone = ""
	_, err := env.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	req = env.baseRequest()
	req.Items = nil
	_, err = env.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	req = env.baseRequest()
	req.PaymentMethod = "bitcoin"
	_, err = env.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	req = env.baseRequest()
	req.Items[0].Quantity = -2
	_, err = env.svc.CreateOrder(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

// ---- promo paths ----

func TestCreateOrderAppliesFixedPromo(t *testing.T) {
	env := newTestEnv()
	promo := env.addPromo(&models.PromoCode{
		Code: "SAVE5", DiscountType: models.DiscountFixed, DiscountValue: 5.00,
	})

	req := env.baseRequest()
	req.PromoCode = "save5" // lookup is case-insensitive

	order, err := env.svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5.00, order.Pricing.Discount)
	assert.Equal(t, "SAVE5", order.Pricing.PromoCode)
	assert.InDelta(t, 15.98, order.Pricing.Total, 0.0001) // 20.98 - 5

	// Redeemed exactly once, count and list in lockstep.
	assert.Equal(t, 1, promo.UsageCount)
	require.Len(t, promo.UsedBy, 1)
	assert.Equal(t, order.CustomerID, promo.UsedBy[0].CustomerID)
	assert.Equal(t, order.Pricing.Subtotal, promo.UsedBy[0].OrderAmount)
}

func TestCreateOrderPromoOncePerCustomer(t *testing.T) {
	env := newTestEnv()
	env.addPromo(&models.PromoCode{
		Code: "ONCE", DiscountType: models.DiscountFixed, DiscountValue: 2.00, PerCustomerLimit: 1,
	})

	req := env.baseRequest()
	req.PromoCode = "ONCE"

	_, err := env.svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = env.svc.CreateOrder(context.Background(), req)
	pe, ok := IsPromoError(err)
	require.True(t, ok, "second use by the same customer must be rejected")
	assert.Equal(t, PromoPerCustomerLimitHit, pe.Reason)
	assert.Len(t, env.orders.orders, 1)
}

func TestCreateOrderRejectsUnknownPromo(t *testing.T) {
	env := newTestEnv()
	req := env.baseRequest()
	req.PromoCode = "NOPE"

	_, err := env.svc.CreateOrder(context.Background(), req)
	pe, ok := IsPromoError(err)
	require.True(t, ok)
	assert.Equal(t, PromoNotFound, pe.Reason)
	assert.Empty(t, env.orders.orders)
}

func TestCreateOrderPromoBelowMinimumRejected(t *testing.T) {
	env := newTestEnv()
	env.addPromo(&models.PromoCode{
		Code: "BIG50", DiscountType: models.DiscountFixed, DiscountValue: 10.00,
		MinimumOrderAmount: 50.00,
	})

	req := env.baseRequest()
	req.PromoCode = "BIG50"

	_, err := env.svc.CreateOrder(context.Background(), req)
	pe, ok := IsPromoError(err)
	require.True(t, ok)
	assert.Equal(t, PromoMinimumNotMet, pe.Reason)
}

func TestCreateOrderSurvivesRedeemFailure(t *testing.T) {
	// The order exists once inserted; a failed redemption is logged,
	// not surfaced.
	env := newTestEnv()
	env.addPromo(&models.PromoCode{
		Code: "SAVE5", DiscountType: models.DiscountFixed, DiscountValue: 5.00,
	})
	env.promos.redeemErr = errors.New("mongo down")

	req := env.baseRequest()
	req.PromoCode = "SAVE5"

	order, err := env.svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5.00, order.Pricing.Discount)
	assert.Len(t, env.orders.orders, 1)
}

// ---- lifecycle ----

func placeOrder(t *testing.T, env *testEnv) *models.Order {
	t.Helper()
	req := env.baseRequest()
	req.Tip = 4.00
	order, err := env.svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	return order
}

func advance(t *testing.T, env *testEnv, id primitive.ObjectID, statuses ...models.OrderStatus) *models.Order {
	t.Helper()
	var order *models.Order
	var err error
	for _, s := range statuses {
		order, err = env.svc.UpdateStatus(context.Background(), id, s, "admin@store")
		require.NoError(t, err)
	}
	return order
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	updated, err := env.svc.UpdateStatus(context.Background(), order.ID, models.StatusConfirmed, "admin@store")
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, models.StatusConfirmed, updated.StatusHistory[1].Status)
	assert.Equal(t, "admin@store", updated.StatusHistory[1].Actor)
	assert.Equal(t, []models.OrderStatus{models.StatusConfirmed}, env.notifier.statuses)
}

func TestUpdateStatusRejectsIllegalMove(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	_, err := env.svc.UpdateStatus(context.Background(), order.ID, models.StatusDelivering, "admin@store")
	te, ok := IsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, models.StatusPlaced, te.From)
	assert.Equal(t, models.StatusDelivering, te.To)
}

func TestUpdateStatusRejectsUnknownAndCancelled(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	_, err := env.svc.UpdateStatus(context.Background(), order.ID, "shipped", "admin@store")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.svc.UpdateStatus(context.Background(), order.ID, models.StatusCancelled, "admin@store")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusStaleWriteRejected(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)
	env.orders.stale = true

	_, err := env.svc.UpdateStatus(context.Background(), order.ID, models.StatusConfirmed, "admin@store")
	_, ok := IsTransitionError(err)
	assert.True(t, ok, "a concurrently-moved order must reject, not last-write-win")
}

func TestDeliveredCreditsDriver(t *testing.T) {
	env := newTestEnv()
	driverID := primitive.NewObjectID()
	env.drivers.drivers[driverID] = &models.Driver{
		ID: driverID, Name: "Sam", Status: models.DriverOnline, PayRate: 10.00,
	}

	order := placeOrder(t, env) // tip 4.00
	advance(t, env, order.ID, models.StatusConfirmed, models.StatusShopping)

	_, err := env.svc.AssignDriver(context.Background(), order.ID, driverID)
	require.NoError(t, err)
	assert.Equal(t, models.DriverBusy, env.drivers.drivers[driverID].Status)

	updated := advance(t, env, order.ID, models.StatusDelivering, models.StatusDelivered)

	assert.Equal(t, models.StatusDelivered, updated.Status)
	assert.NotNil(t, updated.Delivery.ActualTime)
	assert.Equal(t, models.PaymentCompleted, updated.Payment.Status)

	driver := env.drivers.drivers[driverID]
	assert.Equal(t, 1, driver.TotalDeliveries)
	assert.Equal(t, 14.00, driver.Earnings) // pay rate 10 + tip 4
	assert.Equal(t, models.DriverOnline, driver.Status)
}

func TestDeliveredWithoutDriverSkipsCredit(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	updated := advance(t, env, order.ID,
		models.StatusConfirmed, models.StatusShopping, models.StatusDelivering, models.StatusDelivered)

	assert.Equal(t, models.StatusDelivered, updated.Status)
	require.Len(t, updated.StatusHistory, 5)
}

func TestAssignDriverIsNotAStatusChange(t *testing.T) {
	env := newTestEnv()
	driverID := primitive.NewObjectID()
	env.drivers.drivers[driverID] = &models.Driver{ID: driverID, Name: "Sam", Status: models.DriverOnline}

	order := placeOrder(t, env)
	updated, err := env.svc.AssignDriver(context.Background(), order.ID, driverID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPlaced, updated.Status)
	assert.Len(t, updated.StatusHistory, 1)
	require.NotNil(t, updated.Delivery.DriverID)
	assert.Equal(t, driverID, *updated.Delivery.DriverID)
	assert.Equal(t, "Sam", updated.Delivery.DriverName)
}

func TestAssignDriverRejectsInactiveDriverAndClosedOrder(t *testing.T) {
	env := newTestEnv()
	driverID := primitive.NewObjectID()
	env.drivers.drivers[driverID] = &models.Driver{ID: driverID, Name: "Sam", Status: models.DriverInactive}

	order := placeOrder(t, env)
	_, err := env.svc.AssignDriver(context.Background(), order.ID, driverID)
	assert.ErrorIs(t, err, ErrValidation)

	env.drivers.drivers[driverID].Status = models.DriverOnline
	cancelled, err := env.svc.CancelOrder(context.Background(), order.ID, "customer changed mind", "admin@store")
	require.NoError(t, err)
	_, err = env.svc.AssignDriver(context.Background(), cancelled.ID, driverID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelOrderStampsReason(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	cancelled, err := env.svc.CancelOrder(context.Background(), order.ID, "out of delivery range", "admin@store")
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, "out of delivery range", cancelled.CancelReason)
	assert.NotNil(t, cancelled.CancelledAt)
	require.Len(t, cancelled.StatusHistory, 2)
	assert.Equal(t, models.StatusCancelled, cancelled.StatusHistory[1].Status)
}

func TestCancelOrderRequiresReason(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	_, err := env.svc.CancelOrder(context.Background(), order.ID, "", "admin@store")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelRejectedOnceDelivering(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)
	advance(t, env, order.ID, models.StatusConfirmed, models.StatusShopping, models.StatusDelivering)

	_, err := env.svc.CancelOrder(context.Background(), order.ID, "too late", "admin@store")
	te, ok := IsTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, models.StatusDelivering, te.From)
}

// ---- reads ----

func TestTrackByPhone(t *testing.T) {
	env := newTestEnv()
	order := placeOrder(t, env)

	orders, err := env.svc.TrackByPhone(context.Background(), "555-0101")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderNumber, orders[0].OrderNumber)

	// Reads are idempotent: same query, same data.
	again, err := env.svc.TrackByPhone(context.Background(), "555-0101")
	require.NoError(t, err)
	assert.Equal(t, orders, again)

	_, err = env.svc.TrackByPhone(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	env := newTestEnv()
	first := placeOrder(t, env)
	second, err := env.svc.CreateOrder(context.Background(), env.baseRequest())
	require.NoError(t, err)
	advance(t, env, second.ID, models.StatusConfirmed)

	placed := models.StatusPlaced
	orders, err := env.svc.ListOrders(context.Background(), &placed)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, first.OrderNumber, orders[0].OrderNumber)

	bogus := models.OrderStatus("shipped")
	_, err = env.svc.ListOrders(context.Background(), &bogus)
	assert.ErrorIs(t, err, ErrValidation)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"grocery-api/models"
)

// OrderService orchestrates order creation and the lifecycle
// operations on existing orders.
type OrderService struct {
	Orders    OrderStore
	Products  ProductStore
	Customers CustomerStore
	Drivers   DriverStore
	Promos    PromoStore
	Pricing   *PricingCalculator
	Notifier  Notifier

	now func() time.Time
}

// NewOrderService wires an OrderService over its stores
func NewOrderService(orders OrderStore, products ProductStore, customers CustomerStore, drivers DriverStore, promos PromoStore, pricing *PricingCalculator, notifier Notifier) *OrderService {
	return &OrderService{
		Orders:    orders,
		Products:  products,
		Customers: customers,
		Drivers:   drivers,
		Promos:    promos,
		Pricing:   pricing,
		Notifier:  notifier,
		now:       time.Now,
	}
}

// CustomerInfo is the buyer's contact detail on an order request
type CustomerInfo struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email,omitempty"`
	Address models.Address `json:"address"`
}

// ItemRequest is one requested line: product reference and quantity.
// Prices are never taken from the client.
type ItemRequest struct {
	ProductID primitive.ObjectID `json:"product_id"`
	Quantity  int                `json:"quantity"`
}

// CreateOrderRequest is the full order-creation input
type CreateOrderRequest struct {
	Customer       CustomerInfo         `json:"customer"`
	Items          []ItemRequest        `json:"items"`
	PaymentMethod  models.PaymentMethod `json:"payment_method"`
	TimePreference string               `json:"time_preference"`
	Instructions   string               `json:"instructions,omitempty"`
	Tip            float64              `json:"tip"`
	Notes          string               `json:"notes,omitempty"`
	PromoCode      string               `json:"promo_code,omitempty"`
}

// generateOrderNumber builds the human-readable order identifier:
// a timestamp plus a short random suffix.
func generateOrderNumber(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()[:8]
}

func validPaymentMethod(m models.PaymentMethod) bool {
	switch m {
	case models.PaymentCash, models.PaymentCheck, models.PaymentCard:
		return true
	}
	return false
}

// CreateOrder turns a cart of requested items into a persisted, priced
// order in status placed. Product lookups, pricing, customer resolution
// and the order insert must all succeed or nothing is persisted; promo
// redemption, customer stats and notifications are best effort and only
// logged on failure.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if req.Customer.Name == "" || req.Customer.Phone == "" {
		return nil, fmt.Errorf("%w: customer name and phone are required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: invalid payment method %q", ErrValidation, req.PaymentMethod)
	}

	// Snapshot every line from the current catalog. Missing or inactive
	// products reject the whole order.
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, ir := range req.Items {
		if ir.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		product, err := s.Products.Get(ctx, ir.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s not found", ErrProductUnavailable, ir.ProductID.Hex())
			}
			return nil, err
		}
		if !product.IsActive() {
			return nil, fmt.Errorf("%w: %s is no longer available", ErrProductUnavailable, product.Name)
		}
		if product.Stock < ir.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for %s", ErrProductUnavailable, product.Name)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  ir.Quantity,
			Taxable:   product.Taxable,
		})
	}

	// An existing customer's ID feeds the per-customer promo cap; a new
	// customer has no redemptions to count.
	customer, err := s.Customers.FindByPhoneOrEmail(ctx, req.Customer.Phone, req.Customer.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// Price once without a discount to get the subtotal the promo
	// checks run against.
	pricing, err := s.Pricing.Calculate(items, req.Tip, 0, "")
	if err != nil {
		return nil, err
	}

	var promo *models.PromoCode
	if req.PromoCode != "" {
		code := NormalizePromoCode(req.PromoCode)
		promo, err = s.Promos.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, &PromoError{Reason: PromoNotFound, Message: "promo code not found"}
			}
			return nil, err
		}
		var customerID *primitive.ObjectID
		if customer != nil {
			customerID = &customer.ID
		}
		if err := ValidatePromo(promo, customerID, pricing.Subtotal, s.now()); err != nil {
			return nil, err
		}
		discount := PromoDiscount(promo, pricing.Subtotal)
		pricing, err = s.Pricing.Calculate(items, req.Tip, discount, promo.Code)
		if err != nil {
			return nil, err
		}
	}

	if customer == nil {
		customer, err = s.resolveNewCustomer(ctx, req.Customer)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	order := &models.Order{
		OrderNumber:   generateOrderNumber(now),
		CustomerID:    customer.ID,
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		CustomerEmail: req.Customer.Email,
		Items:         items,
		Pricing:       pricing,
		Status:        models.StatusPlaced,
		StatusHistory: []models.StatusEntry{{Status: models.StatusPlaced, Timestamp: now}},
		Payment:       models.Payment{Method: req.PaymentMethod, Status: models.PaymentPending},
		Delivery: models.DeliveryInfo{
			TimePreference: req.TimePreference,
			Instructions:   req.Instructions,
		},
		Address:   req.Customer.Address,
		Notes:     req.Notes,
		CreatedAt: now,
	}
	if err := s.Orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Everything below is best effort: the order exists, failures here
	// must not surface to the customer.
	if promo != nil {
		if err := s.Promos.Redeem(ctx, promo.ID, customer.ID, order.ID, pricing.Subtotal); err != nil {
			log.Printf("order %s: failed to redeem promo %s: %v", order.OrderNumber, promo.Code, err)
		}
	}
	if err := s.Customers.IncrementStats(ctx, customer.ID, pricing.Total); err != nil {
		log.Printf("order %s: failed to update customer stats: %v", order.OrderNumber, err)
	}
	if s.Notifier != nil {
		s.Notifier.OrderCreated(order)
	}

	return order, nil
}

// resolveNewCustomer creates the customer record, retrying once without
// the email if a unique constraint rejects the first attempt.
func (s *OrderService) resolveNewCustomer(ctx context.Context, info CustomerInfo) (*models.Customer, error) {
	customer := &models.Customer{
		Name:      info.Name,
		Phone:     info.Phone,
		Email:     info.Email,
		Address:   info.Address,
		CreatedAt: s.now(),
	}
	err := s.Customers.Create(ctx, customer)
	if err == nil {
		return customer, nil
	}
	if errors.Is(err, ErrDuplicate) && customer.Email != "" {
		customer.Email = ""
		if retryErr := s.Customers.Create(ctx, customer); retryErr == nil {
			return customer, nil
		}
	}
	return nil, fmt.Errorf("failed to create customer: %w", err)
}

// UpdateStatus moves an order forward through its lifecycle. The store
// write filters on the expected current status, so a concurrent update
// is rejected rather than applied out of order. Cancellation goes
// through CancelOrder since it needs a reason.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, to models.OrderStatus, actor string) (*models.Order, error) {
	if !ValidStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}
	if to == models.StatusCancelled {
		return nil, fmt.Errorf("%w: cancellation requires a reason", ErrValidation)
	}

	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := CheckTransition(order.Status, to); err != nil {
		return nil, err
	}

	now := s.now()
	entry := models.StatusEntry{Status: to, Timestamp: now, Actor: actor}
	if to == models.StatusDelivered {
		err = s.Orders.MarkDelivered(ctx, orderID, order.Status, entry, now)
	} else {
		err = s.Orders.Transition(ctx, orderID, order.Status, to, entry)
	}
	if err != nil {
		if errors.Is(err, ErrStale) {
			return nil, &TransitionError{From: order.Status, To: to}
		}
		return nil, err
	}

	if to == models.StatusDelivered && order.Delivery.DriverID != nil {
		s.creditDriver(ctx, order)
	}

	updated, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.StatusChanged(updated, to)
	}
	return updated, nil
}

// creditDriver accrues the delivery to the assigned driver and puts
// them back online. The order is already delivered; failures here are
// logged, not surfaced.
func (s *OrderService) creditDriver(ctx context.Context, order *models.Order) {
	driverID := *order.Delivery.DriverID
	driver, err := s.Drivers.FindByID(ctx, driverID)
	if err != nil {
		log.Printf("order %s: failed to load driver %s: %v", order.OrderNumber, driverID.Hex(), err)
		return
	}
	if err := s.Drivers.IncrementDeliveryStats(ctx, driverID, driver.PayRate, order.Pricing.Tip); err != nil {
		log.Printf("order %s: failed to credit driver %s: %v", order.OrderNumber, driverID.Hex(), err)
		return
	}
	if err := s.Drivers.SetStatus(ctx, driverID, models.DriverOnline); err != nil {
		log.Printf("order %s: failed to reset driver %s status: %v", order.OrderNumber, driverID.Hex(), err)
	}
}

// CancelOrder cancels an order still in placed or confirmed. The
// reason is required and stored with the cancellation timestamp.
func (s *OrderService) CancelOrder(ctx context.Context, orderID primitive.ObjectID, reason, actor string) (*models.Order, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: cancel reason is required", ErrValidation)
	}

	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := CheckTransition(order.Status, models.StatusCancelled); err != nil {
		return nil, err
	}

	now := s.now()
	entry := models.StatusEntry{Status: models.StatusCancelled, Timestamp: now, Actor: actor}
	if err := s.Orders.MarkCancelled(ctx, orderID, order.Status, entry, now, reason); err != nil {
		if errors.Is(err, ErrStale) {
			return nil, &TransitionError{From: order.Status, To: models.StatusCancelled}
		}
		return nil, err
	}

	updated, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.StatusChanged(updated, models.StatusCancelled)
	}
	return updated, nil
}

// AssignDriver puts a driver on an order. It is a side transition: no
// status change and no history entry, but the driver goes busy.
func (s *OrderService) AssignDriver(ctx context.Context, orderID, driverID primitive.ObjectID) (*models.Order, error) {
	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.StatusDelivered || order.Status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: cannot assign a driver to a %s order", ErrValidation, order.Status)
	}

	driver, err := s.Drivers.FindByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.Status == models.DriverInactive {
		return nil, fmt.Errorf("%w: driver %s is inactive", ErrValidation, driver.Name)
	}

	if err := s.Orders.AssignDriver(ctx, orderID, driverID, driver.Name); err != nil {
		return nil, err
	}
	if err := s.Drivers.SetStatus(ctx, driverID, models.DriverBusy); err != nil {
		log.Printf("order %s: failed to mark driver %s busy: %v", order.OrderNumber, driverID.Hex(), err)
	}
	return s.Orders.FindByID(ctx, orderID)
}

// GetOrder fetches one order by id
func (s *OrderService) GetOrder(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	return s.Orders.FindByID(ctx, orderID)
}

// TrackByPhone returns a customer's orders looked up by phone number
func (s *OrderService) TrackByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	return s.Orders.FindByPhone(ctx, phone)
}

// ListOrders returns all orders, optionally filtered by status
func (s *OrderService) ListOrders(ctx context.Context, status *models.OrderStatus) ([]models.Order, error) {
	if status != nil && !ValidStatus(*status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *status)
	}
	return s.Orders.List(ctx, status)
}

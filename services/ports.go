package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"grocery-api/models"
)

// ProductStore reads the catalog
type ProductStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

// CustomerStore resolves and updates customer records
type CustomerStore interface {
	FindByPhoneOrEmail(ctx context.Context, phone, email string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	IncrementStats(ctx context.Context, id primitive.ObjectID, orderTotal float64) error
}

// DriverStore reads and updates drivers
type DriverStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	IncrementDeliveryStats(ctx context.Context, id primitive.ObjectID, payRate, tip float64) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error
}

// PromoStore looks up and redeems promo codes. Redeem must bump the
// usage count and append the usage record in one atomic update.
type PromoStore interface {
	FindByCode(ctx context.Context, code string) (*models.PromoCode, error)
	Redeem(ctx context.Context, promoID, customerID, orderID primitive.ObjectID, orderAmount float64) error
}

// OrderStore persists orders. The transition methods filter on the
// expected current status so a concurrent update loses cleanly
// (ErrStale) instead of last-write-wins.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByNumber(ctx context.Context, number string) (*models.Order, error)
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error)
	FindByPhone(ctx context.Context, phone string) ([]models.Order, error)
	List(ctx context.Context, status *models.OrderStatus) ([]models.Order, error)
	Transition(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus, entry models.StatusEntry) error
	MarkDelivered(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, entry models.StatusEntry, at time.Time) error
	MarkCancelled(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, entry models.StatusEntry, at time.Time, reason string) error
	AssignDriver(ctx context.Context, id, driverID primitive.ObjectID, driverName string) error
}

// Notifier fans out best-effort notifications. Implementations log
// failures; nothing here may fail the operation that triggered it.
type Notifier interface {
	OrderCreated(order *models.Order)
	StatusChanged(order *models.Order, newStatus models.OrderStatus)
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPlaced     OrderStatus = "placed"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusShopping   OrderStatus = "shopping"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// PaymentMethod is how the customer pays at the door
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCheck PaymentMethod = "check"
	PaymentCard  PaymentMethod = "card"
)

// PaymentStatus tracks whether payment has been collected
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// OrderItem is a line item snapshotted from the catalog at order time.
// Price and name are copied so historical orders survive catalog edits.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	UnitPrice float64            `bson:"unit_price" json:"unit_price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Taxable   bool               `bson:"taxable" json:"taxable"`
}

// Pricing holds the computed money breakdown for an order.
// Invariant: Total == Subtotal + DeliveryFee + Tip + Tax - Discount.
type Pricing struct {
	Subtotal    float64 `bson:"subtotal" json:"subtotal"`
	DeliveryFee float64 `bson:"delivery_fee" json:"delivery_fee"`
	Tip         float64 `bson:"tip" json:"tip"`
	Tax         float64 `bson:"tax" json:"tax"`
	Discount    float64 `bson:"discount" json:"discount"`
	PromoCode   string  `bson:"promo_code,omitempty" json:"promo_code,omitempty"`
	Total       float64 `bson:"total" json:"total"`
}

// Payment represents the payment record embedded in an order
type Payment struct {
	Method        PaymentMethod `bson:"method" json:"method"`
	Status        PaymentStatus `bson:"status" json:"status"`
	TransactionID string        `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
}

// DeliveryInfo carries driver assignment and delivery details
type DeliveryInfo struct {
	DriverID       *primitive.ObjectID `bson:"driver_id,omitempty" json:"driver_id,omitempty"`
	DriverName     string              `bson:"driver_name,omitempty" json:"driver_name,omitempty"`
	TimePreference string              `bson:"time_preference" json:"time_preference"`
	Instructions   string              `bson:"instructions,omitempty" json:"instructions,omitempty"`
	ActualTime     *time.Time          `bson:"actual_time,omitempty" json:"actual_time,omitempty"`
}

// StatusEntry is one row of the append-only status audit trail
type StatusEntry struct {
	Status    OrderStatus `bson:"status" json:"status"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
	Actor     string      `bson:"actor,omitempty" json:"actor,omitempty"`
}

// Order represents a customer's order
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderNumber   string             `bson:"order_number" json:"order_number"`
	CustomerID    primitive.ObjectID `bson:"customer_id" json:"customer_id"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	CustomerPhone string             `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail string             `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Pricing       Pricing            `bson:"pricing" json:"pricing"`
	Status        OrderStatus        `bson:"status" json:"status"`
	StatusHistory []StatusEntry      `bson:"status_history" json:"status_history"`
	Payment       Payment            `bson:"payment" json:"payment"`
	Delivery      DeliveryInfo       `bson:"delivery" json:"delivery"`
	Address       Address            `bson:"address" json:"address"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	CancelledAt   *time.Time         `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CancelReason  string             `bson:"cancel_reason,omitempty" json:"cancel_reason,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountType is how a promo code's value is applied
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoUsage records one redemption of a promo code
type PromoUsage struct {
	CustomerID  primitive.ObjectID `bson:"customer_id" json:"customer_id"`
	OrderID     primitive.ObjectID `bson:"order_id" json:"order_id"`
	UsedAt      time.Time          `bson:"used_at" json:"used_at"`
	OrderAmount float64            `bson:"order_amount" json:"order_amount"`
}

// PromoCode is a named, time-boxed, usage-capped discount rule.
// UsageCount must always equal len(UsedBy); redemption writes both
// in a single atomic update.
type PromoCode struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code               string             `bson:"code" json:"code"` // stored uppercased
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	DiscountType       DiscountType       `bson:"discount_type" json:"discount_type"`
	DiscountValue      float64            `bson:"discount_value" json:"discount_value"`
	MinimumOrderAmount float64            `bson:"minimum_order_amount" json:"minimum_order_amount"`
	MaxDiscount        *float64           `bson:"max_discount,omitempty" json:"max_discount,omitempty"`
	UsageLimit         *int               `bson:"usage_limit,omitempty" json:"usage_limit,omitempty"`
	UsageCount         int                `bson:"usage_count" json:"usage_count"`
	PerCustomerLimit   int                `bson:"per_customer_limit" json:"per_customer_limit"`
	ValidFrom          time.Time          `bson:"valid_from" json:"valid_from"`
	ValidUntil         time.Time          `bson:"valid_until" json:"valid_until"`
	IsActive           bool               `bson:"is_active" json:"is_active"`
	UsedBy             []PromoUsage       `bson:"used_by" json:"used_by"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// TimesUsedBy counts prior redemptions by one customer
func (p *PromoCode) TimesUsedBy(customerID primitive.ObjectID) int {
	n := 0
	for _, u := range p.UsedBy {
		if u.CustomerID == customerID {
			n++
		}
	}
	return n
}

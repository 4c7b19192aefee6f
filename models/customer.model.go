package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a buyer, resolved by phone first, email second.
// TotalOrders and TotalSpent only ever go up, incremented once per
// successfully created order.
type Customer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Address     Address            `bson:"address" json:"address"`
	TotalOrders int                `bson:"total_orders" json:"total_orders"`
	TotalSpent  float64            `bson:"total_spent" json:"total_spent"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverStatus represents a driver's availability
type DriverStatus string

const (
	DriverOnline   DriverStatus = "online"
	DriverBusy     DriverStatus = "busy"
	DriverOffline  DriverStatus = "offline"
	DriverInactive DriverStatus = "inactive"
)

// Driver represents a delivery driver. Earnings accrue as
// pay_rate + tip once per order reaching delivered.
type Driver struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Phone           string             `bson:"phone" json:"phone"`
	Email           string             `bson:"email,omitempty" json:"email,omitempty"`
	Status          DriverStatus       `bson:"status" json:"status"`
	PayRate         float64            `bson:"pay_rate" json:"pay_rate"`
	Earnings        float64            `bson:"earnings" json:"earnings"`
	TotalDeliveries int                `bson:"total_deliveries" json:"total_deliveries"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

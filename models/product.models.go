package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents an item in the grocery catalog.
// Taxable marks non-food items; groceries are tax-exempt by regional law,
// so the flag decides whether a line contributes to the taxable base.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Unit        string             `bson:"unit,omitempty" json:"unit,omitempty"` // e.g. "lb", "each"
	Taxable     bool               `bson:"taxable" json:"taxable"`
	Status      string             `bson:"status" json:"status"` // "active" or "inactive"
	Stock       int                `bson:"stock" json:"stock"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// IsActive reports whether the product can be ordered
func (p *Product) IsActive() bool {
	return p.Status == "active"
}

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"grocery-api/models"
	"grocery-api/services"
)

// ProductStore is the Mongo-backed product catalog
type ProductStore struct {
	Collection *mongo.Collection
}

// NewProductStore creates a ProductStore over the products collection
func NewProductStore(client *mongo.Client) *ProductStore {
	return &ProductStore{Collection: client.Database("grocery").Collection("products")}
}

// Get fetches one product by id
func (s *ProductStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

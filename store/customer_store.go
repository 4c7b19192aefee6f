package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"grocery-api/models"
	"grocery-api/services"
)

// CustomerStore is the Mongo-backed customer collection
type CustomerStore struct {
	Collection *mongo.Collection
}

// NewCustomerStore creates a CustomerStore over the customers collection
func NewCustomerStore(client *mongo.Client) *CustomerStore {
	return &CustomerStore{Collection: client.Database("grocery").Collection("customers")}
}

// FindByPhoneOrEmail resolves a customer by phone first, email second
func (s *CustomerStore) FindByPhoneOrEmail(ctx context.Context, phone, email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.Collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&customer)
	if err == nil {
		return &customer, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	if email == "" {
		return nil, services.ErrNotFound
	}
	err = s.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts a new customer and fills in its generated id.
// Unique-index violations come back as ErrDuplicate so the caller can
// retry without the conflicting field.
func (s *CustomerStore) Create(ctx context.Context, customer *models.Customer) error {
	result, err := s.Collection.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrDuplicate
		}
		return err
	}
	customer.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// IncrementStats bumps the aggregate counters in one atomic update, so
// concurrent orders from the same customer cannot lose an increment.
func (s *CustomerStore) IncrementStats(ctx context.Context, id primitive.ObjectID, orderTotal float64) error {
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{
			"total_orders": 1,
			"total_spent":  orderTotal,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

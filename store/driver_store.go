package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"grocery-api/models"
	"grocery-api/services"
)

// DriverStore is the Mongo-backed driver collection
type DriverStore struct {
	Collection *mongo.Collection
}

// NewDriverStore creates a DriverStore over the drivers collection
func NewDriverStore(client *mongo.Client) *DriverStore {
	return &DriverStore{Collection: client.Database("grocery").Collection("drivers")}
}

// FindByID fetches one driver
func (s *DriverStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	var driver models.Driver
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&driver)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// List returns all drivers, optionally filtered by status
func (s *DriverStore) List(ctx context.Context, status *models.DriverStatus) ([]models.Driver, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	cursor, err := s.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// Create inserts a new driver and fills in its generated id
func (s *DriverStore) Create(ctx context.Context, driver *models.Driver) error {
	result, err := s.Collection.InsertOne(ctx, driver)
	if err != nil {
		return err
	}
	driver.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// IncrementDeliveryStats accrues one delivery: pay rate plus tip into
// earnings, deliveries up by one, all in a single atomic update.
func (s *DriverStore) IncrementDeliveryStats(ctx context.Context, id primitive.ObjectID, payRate, tip float64) error {
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{
			"total_deliveries": 1,
			"earnings":         payRate + tip,
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

// SetStatus updates a driver's availability
func (s *DriverStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

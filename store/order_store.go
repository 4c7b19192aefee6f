package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"grocery-api/models"
	"grocery-api/services"
)

// OrderStore is the Mongo-backed order collection
type OrderStore struct {
	Collection *mongo.Collection
}

// NewOrderStore creates an OrderStore over the orders collection
func NewOrderStore(client *mongo.Client) *OrderStore {
	return &OrderStore{Collection: client.Database("grocery").Collection("orders")}
}

// Insert persists a new order and fills in its generated id
func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	result, err := s.Collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID fetches one order
func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByNumber fetches one order by its human-readable number
func (s *OrderStore) FindByNumber(ctx context.Context, number string) (*models.Order, error) {
	var order models.Order
	err := s.Collection.FindOne(ctx, bson.M{"order_number": number}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByCustomer returns a customer's orders, newest first
func (s *OrderStore) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	return s.find(ctx, bson.M{"customer_id": customerID})
}

// FindByPhone returns orders placed under a phone number, newest first
func (s *OrderStore) FindByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"customer_phone": phone})
}

// List returns all orders, optionally filtered by status
func (s *OrderStore) List(ctx context.Context, status *models.OrderStatus) ([]models.Order, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	return s.find(ctx, filter)
}

func (s *OrderStore) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := s.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Transition applies a status change with a compare-and-swap on the
// expected current status. A filter miss on an existing order means the
// status moved underneath the caller; that surfaces as ErrStale.
func (s *OrderStore) Transition(ctx context.Context, id primitive.ObjectID, from, to models.OrderStatus, entry models.StatusEntry) error {
	update := bson.M{
		"$set":  bson.M{"status": to},
		"$push": bson.M{"status_history": entry},
	}
	return s.casUpdate(ctx, id, from, update)
}

// MarkDelivered stamps delivery completion: status, actual time and
// payment collected, plus the history entry, in one write.
func (s *OrderStore) MarkDelivered(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, entry models.StatusEntry, at time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"status":               models.StatusDelivered,
			"delivery.actual_time": at,
			"payment.status":       models.PaymentCompleted,
		},
		"$push": bson.M{"status_history": entry},
	}
	return s.casUpdate(ctx, id, from, update)
}

// MarkCancelled stamps cancellation with its timestamp and reason
func (s *OrderStore) MarkCancelled(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, entry models.StatusEntry, at time.Time, reason string) error {
	update := bson.M{
		"$set": bson.M{
			"status":        models.StatusCancelled,
			"cancelled_at":  at,
			"cancel_reason": reason,
		},
		"$push": bson.M{"status_history": entry},
	}
	return s.casUpdate(ctx, id, from, update)
}

// AssignDriver sets the driver fields without touching the status
func (s *OrderStore) AssignDriver(ctx context.Context, id, driverID primitive.ObjectID, driverName string) error {
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"delivery.driver_id":   driverID,
			"delivery.driver_name": driverName,
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

func (s *OrderStore) casUpdate(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, update bson.M) error {
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id, "status": from}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing order from a concurrent status change.
		count, err := s.Collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return services.ErrNotFound
		}
		return services.ErrStale
	}
	return nil
}

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"grocery-api/models"
	"grocery-api/services"
)

// PromoStore is the Mongo-backed promo code collection
type PromoStore struct {
	Collection *mongo.Collection
}

// NewPromoStore creates a PromoStore over the promocodes collection
func NewPromoStore(client *mongo.Client) *PromoStore {
	return &PromoStore{Collection: client.Database("grocery").Collection("promocodes")}
}

// FindByCode looks up a promo by its normalized code
func (s *PromoStore) FindByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := s.Collection.FindOne(ctx, bson.M{"code": services.NormalizePromoCode(code)}).Decode(&promo)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// Redeem records one use of the code. The increment and the usage
// record land in the same single-document update, so usage_count can
// never drift from len(used_by).
func (s *PromoStore) Redeem(ctx context.Context, promoID, customerID, orderID primitive.ObjectID, orderAmount float64) error {
	usage := models.PromoUsage{
		CustomerID:  customerID,
		OrderID:     orderID,
		UsedAt:      time.Now(),
		OrderAmount: orderAmount,
	}
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": promoID}, bson.M{
		"$inc":  bson.M{"usage_count": 1},
		"$push": bson.M{"used_by": usage},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// List returns all promo codes
func (s *PromoStore) List(ctx context.Context) ([]models.PromoCode, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promos []models.PromoCode
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// Create inserts a new promo code, normalizing the code for lookup
func (s *PromoStore) Create(ctx context.Context, promo *models.PromoCode) error {
	promo.Code = services.NormalizePromoCode(promo.Code)
	if promo.UsedBy == nil {
		promo.UsedBy = []models.PromoUsage{}
	}
	result, err := s.Collection.InsertOne(ctx, promo)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrDuplicate
		}
		return err
	}
	promo.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces a promo's editable fields. Usage counters are only
// ever touched by Redeem.
func (s *PromoStore) Update(ctx context.Context, id primitive.ObjectID, promo *models.PromoCode) error {
	update := bson.M{
		"$set": bson.M{
			"description":          promo.Description,
			"discount_type":        promo.DiscountType,
			"discount_value":       promo.DiscountValue,
			"minimum_order_amount": promo.MinimumOrderAmount,
			"max_discount":         promo.MaxDiscount,
			"usage_limit":          promo.UsageLimit,
			"per_customer_limit":   promo.PerCustomerLimit,
			"valid_from":           promo.ValidFrom,
			"valid_until":          promo.ValidUntil,
			"is_active":            promo.IsActive,
		},
	}
	result, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

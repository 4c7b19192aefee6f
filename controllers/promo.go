package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"grocery-api/models"
	"grocery-api/services"
	"grocery-api/store"
)

// PromoController handles promo-code requests: admin CRUD plus the
// public validation endpoint the storefront calls before checkout.
type PromoController struct {
	Promos    *store.PromoStore
	Customers services.CustomerStore
}

// NewPromoController creates a new PromoController
func NewPromoController(promos *store.PromoStore, customers services.CustomerStore) *PromoController {
	return &PromoController{Promos: promos, Customers: customers}
}

// CreatePromo adds a new promo code (Admin only)
func (c *PromoController) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var promo models.PromoCode
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if promo.Code == "" || promo.DiscountValue <= 0 {
		http.Error(w, "Code and a positive discount value are required", http.StatusBadRequest)
		return
	}
	if promo.DiscountType != models.DiscountPercentage && promo.DiscountType != models.DiscountFixed {
		http.Error(w, "Discount type must be percentage or fixed", http.StatusBadRequest)
		return
	}
	if promo.PerCustomerLimit <= 0 {
		promo.PerCustomerLimit = 1
	}
	promo.UsageCount = 0
	promo.UsedBy = nil
	promo.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := c.Promos.Create(ctx, &promo); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			http.Error(w, "Promo code already exists", http.StatusConflict)
			return
		}
		http.Error(w, "Error creating promo code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(promo)
}

// GetPromos lists all promo codes (Admin only)
func (c *PromoController) GetPromos(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	promos, err := c.Promos.List(ctx)
	if err != nil {
		http.Error(w, "Error fetching promo codes", http.StatusInternalServerError)
		return
	}
	if promos == nil {
		promos = []models.PromoCode{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(promos)
}

// UpdatePromo edits a promo code's rules (Admin only)
func (c *PromoController) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid promo ID", http.StatusBadRequest)
		return
	}

	var promo models.PromoCode
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := c.Promos.Update(ctx, id, &promo); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Promo code not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error updating promo code", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Promo code updated"})
}

// ValidatePromo checks a code against an order amount before checkout.
// Returns the discount the code would grant; does not redeem anything.
func (c *PromoController) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code        string  `json:"code"`
		Phone       string  `json:"phone,omitempty"`
		OrderAmount float64 `json:"order_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	promo, err := c.Promos.FindByCode(ctx, body.Code)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writePromoRejection(w, &services.PromoError{Reason: services.PromoNotFound, Message: "promo code not found"})
			return
		}
		http.Error(w, "Error looking up promo code", http.StatusInternalServerError)
		return
	}

	var customerID *primitive.ObjectID
	if body.Phone != "" {
		if customer, err := c.Customers.FindByPhoneOrEmail(ctx, body.Phone, ""); err == nil {
			customerID = &customer.ID
		}
	}

	if err := services.ValidatePromo(promo, customerID, body.OrderAmount, time.Now()); err != nil {
		if pe, ok := services.IsPromoError(err); ok {
			writePromoRejection(w, pe)
			return
		}
		http.Error(w, "Error validating promo code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"valid":    true,
		"code":     promo.Code,
		"discount": services.PromoDiscount(promo, body.OrderAmount),
	})
}

func writePromoRejection(w http.ResponseWriter, pe *services.PromoError) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"valid":  false,
		"reason": string(pe.Reason),
		"error":  pe.Message,
	})
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"grocery-api/models"
)

// NormalizePromoCode uppercases and trims a code for lookup and storage
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidatePromo runs the eligibility checks in order, returning a
// PromoError for the first one that fails. customerID is optional; the
// per-customer cap is only checked when it is known (a brand-new
// customer has no prior redemptions to count).
func ValidatePromo(promo *models.PromoCode, customerID *primitive.ObjectID, orderAmount float64, now time.Time) error {
	if promo == nil {
		return &PromoError{Reason: PromoNotFound, Message: "promo code not found"}
	}
	if !promo.IsActive {
		return &PromoError{Reason: PromoInactive, Message: "promo code is not active"}
	}
	if now.Before(promo.ValidFrom) {
		return &PromoError{Reason: PromoNotYetValid, Message: "promo code is not valid yet"}
	}
	if now.After(promo.ValidUntil) {
		return &PromoError{Reason: PromoExpired, Message: "promo code has expired"}
	}
	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return &PromoError{Reason: PromoUsageLimitReached, Message: "promo code usage limit reached"}
	}
	if orderAmount < promo.MinimumOrderAmount {
		return &PromoError{
			Reason:  PromoMinimumNotMet,
			Message: fmt.Sprintf("order must be at least $%.2f to use this code", promo.MinimumOrderAmount),
		}
	}
	if customerID != nil && promo.TimesUsedBy(*customerID) >= promo.PerCustomerLimit {
		return &PromoError{Reason: PromoPerCustomerLimitHit, Message: "promo code already used the maximum number of times"}
	}
	return nil
}

// PromoDiscount computes the discount a validated code grants on an
// order amount. Percentage discounts are capped at MaxDiscount when
// set; every discount is finally clamped to the order amount.
func PromoDiscount(promo *models.PromoCode, orderAmount float64) float64 {
	amount := decimal.NewFromFloat(orderAmount)
	var discount decimal.Decimal

	switch promo.DiscountType {
	case models.DiscountPercentage:
		discount = amount.Mul(decimal.NewFromFloat(promo.DiscountValue)).Div(decimal.NewFromInt(100))
		if promo.MaxDiscount != nil {
			max := decimal.NewFromFloat(*promo.MaxDiscount)
			if discount.GreaterThan(max) {
				discount = max
			}
		}
	case models.DiscountFixed:
		discount = decimal.NewFromFloat(promo.DiscountValue)
	}

	if discount.GreaterThan(amount) {
		discount = amount
	}
	return discount.Round(2).InexactFloat64()
}

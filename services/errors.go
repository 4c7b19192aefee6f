package services

import (
	"errors"
	"fmt"

	"grocery-api/models"
)

// Sentinel errors the controllers branch on to pick HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrDuplicate          = errors.New("duplicate record")
	ErrStale              = errors.New("record changed concurrently")
)

// PromoReason identifies why a promo code was rejected
type PromoReason string

const (
	PromoNotFound            PromoReason = "not_found"
	PromoInactive            PromoReason = "inactive"
	PromoNotYetValid         PromoReason = "not_yet_valid"
	PromoExpired             PromoReason = "expired"
	PromoUsageLimitReached   PromoReason = "usage_limit_reached"
	PromoMinimumNotMet       PromoReason = "minimum_not_met"
	PromoPerCustomerLimitHit PromoReason = "per_customer_limit_reached"
)

// PromoError is a rejected promo code with the reason attached
type PromoError struct {
	Reason  PromoReason
	Message string
}

func (e *PromoError) Error() string {
	return e.Message
}

// TransitionError is an illegal order status change
type TransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// IsPromoError extracts a PromoError from an error chain
func IsPromoError(err error) (*PromoError, bool) {
	var pe *PromoError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsTransitionError extracts a TransitionError from an error chain
func IsTransitionError(err error) (*TransitionError, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

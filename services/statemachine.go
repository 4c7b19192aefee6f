package services

import (
	"grocery-api/models"
)

// transitions is the full set of legal status moves. The lifecycle is
// linear; cancellation is the only branch and closes at confirmed.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPlaced:     {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusShopping, models.StatusCancelled},
	models.StatusShopping:   {models.StatusDelivering},
	models.StatusDelivering: {models.StatusDelivered},
	models.StatusDelivered:  {},
	models.StatusCancelled:  {},
}

// ValidStatus reports whether s names a known order status
func ValidStatus(s models.OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from one status to another is legal
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a TransitionError when the move is illegal
func CheckTransition(from, to models.OrderStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// CanCancel reports whether an order in the given status may still be
// cancelled. Once shopping has started the order is committed.
func CanCancel(from models.OrderStatus) bool {
	return CanTransition(from, models.StatusCancelled)
}

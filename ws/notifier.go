package ws

import (
	"log"

	"grocery-api/models"
	"grocery-api/utils"
)

// OrderNotifier is the notification sink: websocket push to the admin
// feed plus customer and admin emails. Every send is fire-and-forget;
// failures are logged and never propagate.
type OrderNotifier struct {
	Hub   *Hub
	Email *utils.EmailService
}

// NewOrderNotifier wires the sink over its transports
func NewOrderNotifier(hub *Hub, email *utils.EmailService) *OrderNotifier {
	return &OrderNotifier{Hub: hub, Email: email}
}

// OrderCreated pushes the new order to the admin feed and sends the
// confirmation and admin emails in the background.
func (n *OrderNotifier) OrderCreated(order *models.Order) {
	n.Hub.Broadcast("order_created", order)

	go func() {
		if order.CustomerEmail != "" {
			if err := n.Email.SendOrderConfirmationEmail(order.CustomerEmail, order); err != nil {
				log.Printf("order %s: failed to send confirmation email: %v", order.OrderNumber, err)
			}
		}
		if err := n.Email.SendAdminNewOrderEmail(order); err != nil {
			log.Printf("order %s: failed to send admin email: %v", order.OrderNumber, err)
		}
	}()
}

// StatusChanged pushes the transition to the admin feed and emails the
// customer in the background.
func (n *OrderNotifier) StatusChanged(order *models.Order, newStatus models.OrderStatus) {
	n.Hub.Broadcast("order_status_changed", map[string]interface{}{
		"order_number": order.OrderNumber,
		"status":       newStatus,
	})

	if order.CustomerEmail == "" {
		return
	}
	go func() {
		if err := n.Email.SendStatusUpdateEmail(order.CustomerEmail, order, newStatus); err != nil {
			log.Printf("order %s: failed to send status email: %v", order.OrderNumber, err)
		}
	}()
}

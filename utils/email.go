// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"grocery-api/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		panic("POSTMARK_API_TOKEN is not set in environment variables")
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the customer
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order *models.Order) error {
	subject := fmt.Sprintf("Order Confirmation - %s", order.OrderNumber)
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order! Your order <strong>%s</strong> has been placed and will be delivered %s.<br><br>Total: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.CustomerName,
		order.OrderNumber,
		order.Delivery.TimePreference,
		order.Pricing.Total,
		order.Payment.Method,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendAdminNewOrderEmail notifies the store admin of a new order
func (es *EmailService) SendAdminNewOrderEmail(order *models.Order) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is not set")
	}
	subject := fmt.Sprintf("New Order %s", order.OrderNumber)
	htmlContent := fmt.Sprintf(
		"New order <strong>%s</strong> from %s (%s).<br>Items: %d, Total: <strong>$%.2f</strong>",
		order.OrderNumber,
		order.CustomerName,
		order.CustomerPhone,
		len(order.Items),
		order.Pricing.Total,
	)

	return es.SendEmail(adminEmail, subject, htmlContent)
}

// SendStatusUpdateEmail tells the customer their order moved forward
func (es *EmailService) SendStatusUpdateEmail(toEmail string, order *models.Order, status models.OrderStatus) error {
	subject := fmt.Sprintf("Order %s Update", order.OrderNumber)
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order <strong>%s</strong> is now <strong>%s</strong>.<br><br>Thank you for shopping with us!",
		order.CustomerName,
		order.OrderNumber,
		status,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// Package notify persists outbound email notifications for a downstream
// relay to pick up. Recording failures never fail the order they describe.
package notify

import (
	"context"
	"database/sql"
	"fmt"

	"diaa-designs-backend/internal/models"
)

type Store struct {
	db         *sql.DB
	adminEmail string
}

func NewStore(db *sql.DB, adminEmail string) *Store {
	return &Store{db: db, adminEmail: adminEmail}
}

// RecordCVOrder writes the admin-notification and customer-confirmation rows
// for a freshly persisted CV order.
func (s *Store) RecordCVOrder(ctx context.Context, order *models.CVOrder) error {
	admin := models.EmailNotification{
		OrderRef:       order.OrderRef,
		RecipientEmail: s.adminEmail,
		EmailType:      "admin_notification",
		Subject:        "طلب سيرة ذاتية جديد - " + order.CustomerName,
		Content:        adminCVNotification(order),
	}
	customer := models.EmailNotification{
		OrderRef:       order.OrderRef,
		RecipientEmail: order.CustomerEmail,
		EmailType:      "customer_confirmation",
		Subject:        "تأكيد استلام طلبك - ضياء الدين لتصميم السير الذاتية",
		Content:        customerCVConfirmation(order),
	}
	return s.insert(ctx, admin, customer)
}

// RecordLogoOrder does the same for a logo order.
func (s *Store) RecordLogoOrder(ctx context.Context, order *models.LogoOrder) error {
	admin := models.EmailNotification{
		OrderRef:       order.OrderRef,
		RecipientEmail: s.adminEmail,
		EmailType:      "admin_notification",
		Subject:        "طلب تصميم لوجو جديد - " + order.CustomerName,
		Content:        adminLogoNotification(order),
	}
	customer := models.EmailNotification{
		OrderRef:       order.OrderRef,
		RecipientEmail: order.CustomerEmail,
		EmailType:      "customer_confirmation",
		Subject:        "تأكيد استلام طلبك - ضياء الدين للتصاميم",
		Content:        customerLogoConfirmation(order),
	}
	return s.insert(ctx, admin, customer)
}

func (s *Store) insert(ctx context.Context, notifications ...models.EmailNotification) error {
	for _, n := range notifications {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO email_notifications (order_ref, recipient_email, email_type, subject, content)
			VALUES ($1, $2, $3, $4, $5)`,
			n.OrderRef, n.RecipientEmail, n.EmailType, n.Subject, n.Content,
		)
		if err != nil {
			return fmt.Errorf("failed to record %s for %s: %w", n.EmailType, n.OrderRef, err)
		}
	}
	return nil
}

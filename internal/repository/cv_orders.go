package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
	"diaa-designs-backend/internal/supabase"
)

const cvColumns = `id, order_ref, customer_name, customer_email, customer_phone,
	profession, experience, package_type, package_name, additional_services,
	total_price, notes, attachment_name, attachment_path, attachment_size,
	attachment_type, order_status, created_at, updated_at`

// CVOrders is the repository for the CV order collection.
type CVOrders struct {
	db       *sql.DB
	listener *supabase.InsertListener
}

func NewCVOrders(db *sql.DB, listener *supabase.InsertListener) *CVOrders {
	return &CVOrders{db: db, listener: listener}
}

// Create inserts one order, assigning the business ref and initial status
// when the caller left them empty, and returns the persisted row including
// server-assigned fields.
func (r *CVOrders) Create(ctx context.Context, o *models.CVOrder) (*models.CVOrder, error) {
	if o.OrderRef == "" {
		o.OrderRef = orders.NewRef(orders.RefPrefixCV)
	}
	if o.Status == "" {
		o.Status = orders.StatusNew
	}
	if o.PackageName == "" {
		o.PackageName = orders.CVPackageName(o.PackageType)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cv_orders (
			order_ref, customer_name, customer_email, customer_phone,
			profession, experience, package_type, package_name,
			additional_services, total_price, notes,
			attachment_name, attachment_path, attachment_size, attachment_type,
			order_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+cvColumns,
		o.OrderRef, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.Profession, o.Experience, o.PackageType, o.PackageName,
		pq.Array(o.Services), o.TotalPrice, o.Notes,
		o.AttachmentName, o.AttachmentPath, o.AttachmentSize, o.AttachmentType,
		o.Status,
	)

	created, err := scanCVOrder(row)
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

// ListAll returns every order, newest first. An empty collection is a valid
// result, not an error.
func (r *CVOrders) ListAll(ctx context.Context) ([]models.CVOrder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cvColumns+` FROM cv_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []models.CVOrder
	for rows.Next() {
		o, err := scanCVOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cv order: %w", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

// UpdateStatus mutates exactly the status field (and the update timestamp)
// and returns the updated row. ErrNotFound when the id does not exist.
func (r *CVOrders) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.CVOrder, error) {
	if !orders.ValidStatus(status) {
		return nil, fmt.Errorf("invalid order status %q", status)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE cv_orders
		SET order_status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+cvColumns,
		status, id,
	)

	updated, err := scanCVOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return updated, nil
}

// Delete removes one row, irreversibly.
func (r *CVOrders) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cv_orders WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SubscribeInserts opens a push subscription that invokes the callback for
// every row inserted into cv_orders by any client.
func (r *CVOrders) SubscribeInserts(cb func(models.CVOrder)) Subscription {
	return r.listener.Subscribe(func(payload json.RawMessage) {
		var o models.CVOrder
		if err := json.Unmarshal(payload, &o); err != nil {
			log.Printf("cv_orders: dropping malformed insert payload: %v", err)
			return
		}
		cb(o)
	})
}

func scanCVOrder(row interface{ Scan(...any) error }) (*models.CVOrder, error) {
	var o models.CVOrder
	err := row.Scan(
		&o.ID, &o.OrderRef, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Profession, &o.Experience, &o.PackageType, &o.PackageName,
		pq.Array(&o.Services), &o.TotalPrice, &o.Notes,
		&o.AttachmentName, &o.AttachmentPath, &o.AttachmentSize, &o.AttachmentType,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

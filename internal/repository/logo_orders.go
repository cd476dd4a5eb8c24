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

const logoColumns = `id, order_ref, customer_name, customer_email, customer_phone,
	business_name, business_type, logo_package, package_name, style_preferences,
	color_preferences, total_price, notes, inspiration_name, inspiration_path,
	inspiration_size, inspiration_type, order_status, created_at, updated_at`

// LogoOrders is the repository for the logo order collection. Structurally
// parallel to CVOrders; the two collections share no rows and no keys.
type LogoOrders struct {
	db       *sql.DB
	listener *supabase.InsertListener
}

func NewLogoOrders(db *sql.DB, listener *supabase.InsertListener) *LogoOrders {
	return &LogoOrders{db: db, listener: listener}
}

func (r *LogoOrders) Create(ctx context.Context, o *models.LogoOrder) (*models.LogoOrder, error) {
	if o.OrderRef == "" {
		o.OrderRef = orders.NewRef(orders.RefPrefixLogo)
	}
	if o.Status == "" {
		o.Status = orders.StatusNew
	}
	if o.PackageName == "" {
		o.PackageName = orders.LogoPackageName(o.PackageType)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO logo_orders (
			order_ref, customer_name, customer_email, customer_phone,
			business_name, business_type, logo_package, package_name,
			style_preferences, color_preferences, total_price, notes,
			inspiration_name, inspiration_path, inspiration_size, inspiration_type,
			order_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+logoColumns,
		o.OrderRef, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.BusinessName, o.BusinessType, o.PackageType, o.PackageName,
		pq.Array(o.Styles), o.Colors, o.TotalPrice, o.Notes,
		o.AttachmentName, o.AttachmentPath, o.AttachmentSize, o.AttachmentType,
		o.Status,
	)

	created, err := scanLogoOrder(row)
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

func (r *LogoOrders) ListAll(ctx context.Context) ([]models.LogoOrder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+logoColumns+` FROM logo_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []models.LogoOrder
	for rows.Next() {
		o, err := scanLogoOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan logo order: %w", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *LogoOrders) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.LogoOrder, error) {
	if !orders.ValidStatus(status) {
		return nil, fmt.Errorf("invalid order status %q", status)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE logo_orders
		SET order_status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+logoColumns,
		status, id,
	)

	updated, err := scanLogoOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	return updated, nil
}

func (r *LogoOrders) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM logo_orders WHERE id = $1`, id)
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

func (r *LogoOrders) SubscribeInserts(cb func(models.LogoOrder)) Subscription {
	return r.listener.Subscribe(func(payload json.RawMessage) {
		var o models.LogoOrder
		if err := json.Unmarshal(payload, &o); err != nil {
			log.Printf("logo_orders: dropping malformed insert payload: %v", err)
			return
		}
		cb(o)
	})
}

func scanLogoOrder(row interface{ Scan(...any) error }) (*models.LogoOrder, error) {
	var o models.LogoOrder
	err := row.Scan(
		&o.ID, &o.OrderRef, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.BusinessName, &o.BusinessType, &o.PackageType, &o.PackageName,
		pq.Array(&o.Styles), &o.Colors, &o.TotalPrice, &o.Notes,
		&o.AttachmentName, &o.AttachmentPath, &o.AttachmentSize, &o.AttachmentType,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// CVOrder mirrors a row of cv_orders. Nullable columns are pointers; the JSON
// tags match the column names so realtime payloads (row_to_json from the
// insert trigger) decode straight into this type.
type CVOrder struct {
	ID            uuid.UUID  `json:"id"`
	OrderRef      string     `json:"order_ref"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`
	Profession    string     `json:"profession"`
	Experience    *string    `json:"experience"`
	PackageType   string     `json:"package_type"`
	PackageName   string     `json:"package_name"`
	Services      []string   `json:"additional_services"`
	TotalPrice    int        `json:"total_price"`
	Notes         *string    `json:"notes"`
	Status        string     `json:"order_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`

	AttachmentName *string `json:"attachment_name"`
	AttachmentPath *string `json:"attachment_path"`
	AttachmentSize *int64  `json:"attachment_size"`
	AttachmentType *string `json:"attachment_type"`
}

// LogoOrder mirrors a row of logo_orders.
type LogoOrder struct {
	ID            uuid.UUID  `json:"id"`
	OrderRef      string     `json:"order_ref"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`
	BusinessName  string     `json:"business_name"`
	BusinessType  string     `json:"business_type"`
	PackageType   string     `json:"logo_package"`
	PackageName   string     `json:"package_name"`
	Styles        []string   `json:"style_preferences"`
	Colors        *string    `json:"color_preferences"`
	TotalPrice    int        `json:"total_price"`
	Notes         *string    `json:"notes"`
	Status        string     `json:"order_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`

	AttachmentName *string `json:"inspiration_name"`
	AttachmentPath *string `json:"inspiration_path"`
	AttachmentSize *int64  `json:"inspiration_size"`
	AttachmentType *string `json:"inspiration_type"`
}

// HasAttachment reports whether any attachment was recorded at submission
// time. A name without a storage path means the upload failed and only the
// metadata was kept.
func (o *CVOrder) HasAttachment() bool {
	return o.AttachmentName != nil && *o.AttachmentName != ""
}

func (o *CVOrder) AttachmentStored() bool {
	return o.AttachmentPath != nil && *o.AttachmentPath != ""
}

func (o *LogoOrder) HasAttachment() bool {
	return o.AttachmentName != nil && *o.AttachmentName != ""
}

func (o *LogoOrder) AttachmentStored() bool {
	return o.AttachmentPath != nil && *o.AttachmentPath != ""
}

// EmailNotification is a persisted outbound message for a downstream relay.
type EmailNotification struct {
	ID             uuid.UUID `json:"id"`
	OrderRef       string    `json:"order_ref"`
	RecipientEmail string    `json:"recipient_email"`
	EmailType      string    `json:"email_type"`
	Subject        string    `json:"subject"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

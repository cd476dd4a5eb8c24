package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// SubmitResponse is returned to the public order forms.
type SubmitResponse struct {
	Success        bool   `json:"success"`
	OrderRef       string `json:"order_ref,omitempty"`
	TotalPrice     int    `json:"total_price,omitempty"`
	FileUploaded   bool   `json:"file_uploaded"`
	AttachmentName string `json:"attachment_name,omitempty"`
	Message        string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type CVOrderListResponse struct {
	Orders []CVOrder `json:"orders"`
}

type LogoOrderListResponse struct {
	Orders []LogoOrder `json:"orders"`
}

// DashboardStats is recomputed from live dashboard state on every request.
type DashboardStats struct {
	TotalOrders int    `json:"total_orders"`
	Pending     int    `json:"pending"`
	Completed   int    `json:"completed"`
	Revenue     int    `json:"revenue"`
	LiveStatus  string `json:"live_status"`
}

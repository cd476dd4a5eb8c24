// Package intake implements the order submission workflow: validation, price
// computation, best-effort attachment upload, persistence and notification
// records.
package intake

import (
	"context"
	"log"
	"time"

	"diaa-designs-backend/internal/attachments"
	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
	"diaa-designs-backend/internal/repository"
)

type CVCreator interface {
	Create(ctx context.Context, o *models.CVOrder) (*models.CVOrder, error)
}

type LogoCreator interface {
	Create(ctx context.Context, o *models.LogoOrder) (*models.LogoOrder, error)
}

type Uploader interface {
	UploadCV(file attachments.File, orderRef string) attachments.UploadResult
	UploadLogoInspiration(file attachments.File, orderRef string) attachments.UploadResult
}

type NotificationRecorder interface {
	RecordCVOrder(ctx context.Context, order *models.CVOrder) error
	RecordLogoOrder(ctx context.Context, order *models.LogoOrder) error
}

// Result is what a submission reports back to the form. Err carries the cause
// for logging; Message is the Arabic text shown to the visitor.
type Result struct {
	Success        bool
	OrderRef       string
	TotalPrice     int
	FileUploaded   bool
	AttachmentName string
	Message        string
	Err            error
}

type Service struct {
	cv            CVCreator
	logo          LogoCreator
	uploads       Uploader
	notifications NotificationRecorder
	timeout       time.Duration
}

func NewService(cv CVCreator, logo LogoCreator, uploads Uploader, notifications NotificationRecorder, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Service{
		cv:            cv,
		logo:          logo,
		uploads:       uploads,
		notifications: notifications,
		timeout:       timeout,
	}
}

// SubmitCV runs the whole intake flow for one CV order. An attachment upload
// failure degrades to metadata-only persistence; only validation or the
// record insert itself can fail the submission.
func (s *Service) SubmitCV(ctx context.Context, req orders.CVRequest, file *attachments.File) Result {
	if err := req.Validate(); err != nil {
		return Result{
			Message: "يرجى التأكد من ملء جميع الحقول المطلوبة.",
			Err:     err,
		}
	}

	total, err := orders.CVTotal(req.Package, req.Services)
	if err != nil {
		return Result{Message: "الباقة المختارة غير معروفة.", Err: err}
	}

	ref := orders.NewRef(orders.RefPrefixCV)
	order := &models.CVOrder{
		OrderRef:      ref,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Profession:    req.Profession,
		Experience:    optional(req.Experience),
		PackageType:   req.Package,
		PackageName:   orders.CVPackageName(req.Package),
		Services:      req.Services,
		TotalPrice:    total,
		Notes:         optional(req.Notes),
		Status:        orders.StatusNew,
	}

	var uploaded bool
	if file != nil {
		up := s.uploads.UploadCV(*file, ref)
		applyUpload(&order.AttachmentName, &order.AttachmentPath, &order.AttachmentSize, &order.AttachmentType, up)
		uploaded = up.Success
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	created, err := s.cv.Create(cctx, order)
	if err != nil {
		return Result{Message: repository.UserMessage(err), Err: err}
	}

	s.recordCVNotifications(ctx, created)

	return Result{
		Success:        true,
		OrderRef:       created.OrderRef,
		TotalPrice:     created.TotalPrice,
		FileUploaded:   uploaded,
		AttachmentName: attachmentName(created.AttachmentName),
		Message:        "تم حفظ الطلب بنجاح",
	}
}

// SubmitLogo is the logo-order counterpart. When the form allowed selecting
// several inspiration files, only the first reaches this call.
func (s *Service) SubmitLogo(ctx context.Context, req orders.LogoRequest, file *attachments.File) Result {
	if err := req.Validate(); err != nil {
		return Result{
			Message: "يرجى التأكد من ملء جميع الحقول المطلوبة.",
			Err:     err,
		}
	}

	total, err := orders.LogoTotal(req.Package)
	if err != nil {
		return Result{Message: "الباقة المختارة غير معروفة.", Err: err}
	}

	ref := orders.NewRef(orders.RefPrefixLogo)
	order := &models.LogoOrder{
		OrderRef:      ref,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		BusinessName:  req.BusinessName,
		BusinessType:  req.BusinessType,
		PackageType:   req.Package,
		PackageName:   orders.LogoPackageName(req.Package),
		Styles:        req.Styles,
		Colors:        optional(req.Colors),
		TotalPrice:    total,
		Notes:         optional(req.Notes),
		Status:        orders.StatusNew,
	}

	var uploaded bool
	if file != nil {
		up := s.uploads.UploadLogoInspiration(*file, ref)
		applyUpload(&order.AttachmentName, &order.AttachmentPath, &order.AttachmentSize, &order.AttachmentType, up)
		uploaded = up.Success
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	created, err := s.logo.Create(cctx, order)
	if err != nil {
		return Result{Message: repository.UserMessage(err), Err: err}
	}

	s.recordLogoNotifications(ctx, created)

	message := "تم حفظ طلب اللوجو بنجاح"
	if uploaded {
		message += " مع رفع ملف الإلهام"
	} else if file != nil {
		message += " مع حفظ اسم الملف"
	}

	return Result{
		Success:        true,
		OrderRef:       created.OrderRef,
		TotalPrice:     created.TotalPrice,
		FileUploaded:   uploaded,
		AttachmentName: attachmentName(created.AttachmentName),
		Message:        message,
	}
}

func (s *Service) recordCVNotifications(ctx context.Context, order *models.CVOrder) {
	if s.notifications == nil {
		return
	}
	if err := s.notifications.RecordCVOrder(ctx, order); err != nil {
		log.Printf("intake: failed to record notifications for %s: %v", order.OrderRef, err)
	}
}

func (s *Service) recordLogoNotifications(ctx context.Context, order *models.LogoOrder) {
	if s.notifications == nil {
		return
	}
	if err := s.notifications.RecordLogoOrder(ctx, order); err != nil {
		log.Printf("intake: failed to record notifications for %s: %v", order.OrderRef, err)
	}
}

// applyUpload maps an upload outcome onto the record's attachment columns.
// Failed uploads keep name/size/type as metadata and leave the path empty.
func applyUpload(name, path **string, size **int64, mime **string, up attachments.UploadResult) {
	if up.OriginalName != "" {
		*name = &up.OriginalName
	}
	if up.Success {
		*path = &up.StoragePath
	}
	if up.Size > 0 {
		sz := up.Size
		*size = &sz
	}
	if up.MimeType != "" {
		*mime = &up.MimeType
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func attachmentName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diaa-designs-backend/internal/attachments"
	"diaa-designs-backend/internal/intake"
	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
	"diaa-designs-backend/internal/repository"
)

// maxAttachmentBytes caps a single uploaded file at 10MB, matching the
// storage bucket policy.
const maxAttachmentBytes = 10 << 20

var errAttachmentTooLarge = errors.New("attachment exceeds the size limit")

type OrdersHandler struct {
	intake *intake.Service
}

func NewOrdersHandler(intakeService *intake.Service) *OrdersHandler {
	return &OrdersHandler{intake: intakeService}
}

// SubmitCV accepts the public CV order form: multipart fields plus an
// optional previous-CV file.
func (h *OrdersHandler) SubmitCV(c *gin.Context) {
	req := orders.CVRequest{
		Name:       strings.TrimSpace(c.PostForm("name")),
		Email:      strings.TrimSpace(c.PostForm("email")),
		Phone:      strings.TrimSpace(c.PostForm("phone")),
		Profession: strings.TrimSpace(c.PostForm("profession")),
		Experience: c.PostForm("experience"),
		Package:    c.PostForm("package"),
		Services:   c.PostFormArray("additional_services"),
		Notes:      strings.TrimSpace(c.PostForm("notes")),
	}

	file, err := readFormFile(c, "existing_cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, attachmentError(err))
		return
	}

	result := h.intake.SubmitCV(c.Request.Context(), req, file)
	writeSubmitResult(c, result)
}

// SubmitLogo accepts the public logo order form. Only the first inspiration
// file is persisted; extra selections are ignored by design.
func (h *OrdersHandler) SubmitLogo(c *gin.Context) {
	req := orders.LogoRequest{
		Name:         strings.TrimSpace(c.PostForm("name")),
		Email:        strings.TrimSpace(c.PostForm("email")),
		Phone:        strings.TrimSpace(c.PostForm("phone")),
		BusinessName: strings.TrimSpace(c.PostForm("business_name")),
		BusinessType: c.PostForm("business_type"),
		Package:      c.PostForm("logo_package"),
		Styles:       c.PostFormArray("style_preferences"),
		Colors:       strings.TrimSpace(c.PostForm("color_preferences")),
		Notes:        strings.TrimSpace(c.PostForm("notes")),
	}

	file, err := readFormFile(c, "inspiration_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, attachmentError(err))
		return
	}

	result := h.intake.SubmitLogo(c.Request.Context(), req, file)
	writeSubmitResult(c, result)
}

func writeSubmitResult(c *gin.Context, result intake.Result) {
	if !result.Success {
		var ve *orders.ValidationError
		if errors.As(result.Err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"message": result.Message,
				"fields":  ve.Fields,
			})
			return
		}
		c.JSON(persistenceStatus(result.Err), models.ErrorResponse{
			Error:   "failed to save order",
			Message: result.Message,
		})
		return
	}

	c.JSON(http.StatusCreated, models.SubmitResponse{
		Success:        true,
		OrderRef:       result.OrderRef,
		TotalPrice:     result.TotalPrice,
		FileUploaded:   result.FileUploaded,
		AttachmentName: result.AttachmentName,
		Message:        result.Message,
	})
}

// persistenceStatus maps repository failure classes onto HTTP codes.
func persistenceStatus(err error) int {
	var pe *repository.Error
	if errors.As(err, &pe) {
		switch pe.Class {
		case repository.ClassDuplicate:
			return http.StatusConflict
		case repository.ClassMissingRequired:
			return http.StatusBadRequest
		case repository.ClassPermission:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}

// readFormFile reads the named multipart file, if present. A missing file is
// not an error; orders without attachments are fully valid. Files over the
// size cap are rejected outright: either the complete bytes reach storage or
// nothing does.
func readFormFile(c *gin.Context, field string) (*attachments.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read one byte past the cap so an oversized file is detectable instead
	// of silently truncated.
	data, err := io.ReadAll(io.LimitReader(f, maxAttachmentBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxAttachmentBytes {
		return nil, errAttachmentTooLarge
	}

	return &attachments.File{
		Name: header.Filename,
		Data: data,
		MIME: header.Header.Get("Content-Type"),
	}, nil
}

func attachmentError(err error) models.ErrorResponse {
	if errors.Is(err, errAttachmentTooLarge) {
		return models.ErrorResponse{
			Error:   "attachment too large",
			Message: "حجم الملف المرفق يتجاوز الحد الأقصى (10 ميجابايت).",
		}
	}
	return models.ErrorResponse{
		Error:   "invalid attachment",
		Message: "تعذر قراءة الملف المرفق.",
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"diaa-designs-backend/internal/admin"
	"diaa-designs-backend/internal/attachments"
	"diaa-designs-backend/internal/models"
)

type FilesHandler struct {
	dashboard   *admin.Dashboard
	attachments *attachments.Service
}

func NewFilesHandler(dashboard *admin.Dashboard, attachmentService *attachments.Service) *FilesHandler {
	return &FilesHandler{dashboard: dashboard, attachments: attachmentService}
}

// DownloadCVAttachment serves the order's stored file, or the synthesized
// info file when the stored object cannot be retrieved. The fallback path is
// flagged with the X-Attachment-Fallback header.
func (h *FilesHandler) DownloadCVAttachment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, found := h.dashboard.FindCV(id)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "order not found",
			Message: "الطلب غير موجود",
		})
		return
	}
	writeDownload(c, h.attachments.DownloadCV(order))
}

func (h *FilesHandler) DownloadLogoAttachment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, found := h.dashboard.FindLogo(id)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "order not found",
			Message: "الطلب غير موجود",
		})
		return
	}
	writeDownload(c, h.attachments.DownloadLogoInspiration(order))
}

func writeDownload(c *gin.Context, result attachments.DownloadResult) {
	if !result.Success {
		if errors.Is(result.Err, attachments.ErrNoAttachment) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "no attachment",
				Message: "لا يوجد ملف مرفق مع هذا الطلب",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "download failed",
		})
		return
	}

	if result.Fallback {
		c.Header("X-Attachment-Fallback", "true")
	}
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(result.Filename)))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

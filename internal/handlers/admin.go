package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"diaa-designs-backend/internal/admin"
	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
	"diaa-designs-backend/internal/repository"
)

type AdminHandler struct {
	auth      *admin.Authenticator
	dashboard *admin.Dashboard
}

func NewAdminHandler(auth *admin.Authenticator, dashboard *admin.Dashboard) *AdminHandler {
	return &AdminHandler{auth: auth, dashboard: dashboard}
}

// Login verifies the admin credential and issues a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "email and password are required",
		})
		return
	}

	token, expiresAt, err := h.auth.Login(req.Email, req.Password, req.Remember)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid credentials",
			Message: "بيانات الدخول غير صحيحة",
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *AdminHandler) ListCVOrders(c *gin.Context) {
	list := h.dashboard.CVOrders()
	if list == nil {
		list = []models.CVOrder{}
	}
	c.JSON(http.StatusOK, models.CVOrderListResponse{Orders: list})
}

func (h *AdminHandler) ListLogoOrders(c *gin.Context) {
	list := h.dashboard.LogoOrders()
	if list == nil {
		list = []models.LogoOrder{}
	}
	c.JSON(http.StatusOK, models.LogoOrderListResponse{Orders: list})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Stats())
}

func (h *AdminHandler) UpdateCVStatus(c *gin.Context) {
	id, req, ok := statusUpdateArgs(c)
	if !ok {
		return
	}
	updated, err := h.dashboard.SetCVStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) UpdateLogoStatus(c *gin.Context) {
	id, req, ok := statusUpdateArgs(c)
	if !ok {
		return
	}
	updated, err := h.dashboard.SetLogoStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteCVOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.dashboard.RemoveCV(c.Request.Context(), id); err != nil {
		writeMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteLogoOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.dashboard.RemoveLogo(c.Request.Context(), id); err != nil {
		writeMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return uuid.Nil, false
	}
	return id, true
}

func statusUpdateArgs(c *gin.Context) (uuid.UUID, models.StatusUpdateRequest, bool) {
	id, ok := orderID(c)
	if !ok {
		return uuid.Nil, models.StatusUpdateRequest{}, false
	}
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !orders.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid status",
			Message: "حالة الطلب غير معروفة",
		})
		return uuid.Nil, models.StatusUpdateRequest{}, false
	}
	return id, req, true
}

func writeMutationError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "order not found",
			Message: "الطلب غير موجود",
		})
		return
	}
	c.JSON(persistenceStatus(err), models.ErrorResponse{
		Error:   "operation failed",
		Message: repository.UserMessage(err),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/supabase"
)

type HealthHandler struct {
	gateway *supabase.Client
}

func NewHealthHandler(gateway *supabase.Client) *HealthHandler {
	return &HealthHandler{gateway: gateway}
}

// Health reports service liveness plus the gateway's reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := models.HealthResponse{Status: "ok", Database: "reachable"}
	if err := h.gateway.Ping(); err != nil {
		resp.Database = "unreachable"
	}
	c.JSON(http.StatusOK, resp)
}

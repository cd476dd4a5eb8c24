package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"diaa-designs-backend/internal/admin"
)

type StreamHandler struct {
	dashboard *admin.Dashboard
}

func NewStreamHandler(dashboard *admin.Dashboard) *StreamHandler {
	return &StreamHandler{dashboard: dashboard}
}

// Stream pushes dashboard events (new orders, live-channel transitions) to
// the admin browser over server-sent events for the lifetime of the request.
func (h *StreamHandler) Stream(c *gin.Context) {
	events, release := h.dashboard.SubscribeEvents()
	defer release()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Initial state so a freshly opened tab knows the channel health.
	c.SSEvent("live_status", h.dashboard.Stats().LiveStatus)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Kind, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

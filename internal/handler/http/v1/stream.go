package v1

import (
	"io"

	"github.com/gin-gonic/gin"
)

// @Summary Event stream
// @Description Server-sent events: every mutation is delivered to every open connection as a {type, data} JSON frame. Delivery is best-effort, without backfill for late subscribers.
// @Tags Stream
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /stream [get]
func (h *Handler) stream(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Стримим до закрытия соединения клиентом
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return false
			}
			c.SSEvent("message", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

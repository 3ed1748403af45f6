package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// EventsHandler streams sync-complete events to dashboards over SSE.
//
// Each connection subscribes to the broadcast subject on arrival and
// forwards every message as a `sync-complete` SSE event until the client
// disconnects. There is no replay: a dashboard that connects after an event
// fired never sees it.
type EventsHandler struct {
	nc      *nats.Conn
	subject string
	logger  *zap.Logger

	// heartbeat keeps proxies from timing out idle streams.
	heartbeat time.Duration
}

func NewEventsHandler(nc *nats.Conn, subject string, logger *zap.Logger) *EventsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventsHandler{
		nc:        nc,
		subject:   subject,
		logger:    logger,
		heartbeat: 30 * time.Second,
	}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	msgChan := make(chan *nats.Msg, 10)
	sub, err := h.nc.ChanSubscribe(h.subject, msgChan)
	if err != nil {
		h.logger.Error("events: subscribe failed", zap.String("subject", h.subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "subscription failed"})
		return
	}
	defer func() {
		_ = sub.Unsubscribe()
	}()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	h.logger.Debug("events: dashboard connected", zap.String("subject", h.subject))

	for {
		select {
		case msg := <-msgChan:
			fmt.Fprintf(c.Writer, "event: sync-complete\ndata: %s\n\n", msg.Data)
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			flusher.Flush()
		case <-c.Request.Context().Done():
			h.logger.Debug("events: dashboard disconnected", zap.String("subject", h.subject))
			return
		}
	}
}

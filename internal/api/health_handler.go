package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthCheckTimeout = 2 * time.Second

// HealthHandler answers readiness probes.
type HealthHandler struct {
	store Pinger
	log   logrus.FieldLogger
}

func NewHealthHandler(store Pinger, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			h.log.WithError(err).Warn("health check: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handler

import (
	"context"
	"net/http"
	"time"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
)

// EmailMonitor controls the inbound email consumer
type EmailMonitor interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Running() bool
}

type Handler struct {
	monitor EmailMonitor
	logger  *observability.Logger
	now     func() time.Time
}

func New(monitor EmailMonitor, logger *observability.Logger) Handler {
	return Handler{
		monitor: monitor,
		logger:  logger,
		now:     time.Now,
	}
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"timestamp":        h.now().UTC().Format(time.RFC3339),
		"email_monitoring": h.monitor != nil && h.monitor.Running(),
	})
}

func (h *Handler) HandleStartMonitoring(c *gin.Context) {
	if h.monitor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email monitoring is not configured"})
		return
	}
	if err := h.monitor.Start(c.Request.Context()); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.logger.Info(c.Request.Context(), "email monitoring started by "+c.GetString("User-Name"))
	c.JSON(http.StatusOK, gin.H{"message": "Email monitoring started"})
}

func (h *Handler) HandleStopMonitoring(c *gin.Context) {
	if h.monitor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email monitoring is not configured"})
		return
	}
	if err := h.monitor.Stop(c.Request.Context()); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.logger.Info(c.Request.Context(), "email monitoring stopped by "+c.GetString("User-Name"))
	c.JSON(http.StatusOK, gin.H{"message": "Email monitoring stopped"})
}

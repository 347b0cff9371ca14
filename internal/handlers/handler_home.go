package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthHandler reports whether the service and its record store are up.
type healthHandler struct {
	ping func(ctx context.Context) error
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports ok when the record store answers.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

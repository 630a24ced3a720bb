package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/pkg/response"
)

const banner = "Backend for mendly tools project"

// Pinger is satisfied by the principal service and the pgx pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	DB     Pinger
	Logger *logrus.Logger
}

func NewSystemHandler(db Pinger, logger *logrus.Logger) *SystemHandler {
	return &SystemHandler{DB: db, Logger: logger}
}

func (h *SystemHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, banner)
}

func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.DB.Ping(c.Request.Context()); err != nil {
		h.Logger.WithError(err).Warn("health check failed")
		response.Error(c, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
}

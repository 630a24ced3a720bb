package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/mendly/mendly-backend/internal/interface/http"
)

// SystemModule serves the banner and the health check.
type SystemModule struct {
	Handler *handlers.SystemHandler
}

func NewSystemModule(h *handlers.SystemHandler) *SystemModule {
	return &SystemModule{Handler: h}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Banner)
	rg.GET("/health", m.Handler.Health)
}

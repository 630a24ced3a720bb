package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/mendly/mendly-backend/internal/interface/http"
)

// AssignmentModule routes are public.
type AssignmentModule struct {
	Handler *handlers.AssignmentHandler
}

func NewAssignmentModule(h *handlers.AssignmentHandler) *AssignmentModule {
	return &AssignmentModule{Handler: h}
}

func (m *AssignmentModule) Register(rg *gin.RouterGroup) {
	rg.POST("/assignment", m.Handler.Create)
	rg.GET("/assignment", m.Handler.List)
	rg.GET("/assignments", m.Handler.List)
	rg.GET("/assignments/search", m.Handler.Search)
	rg.GET("/assignment/:assignmentId", m.Handler.ListByAssignmentID)
	rg.PUT("/:_id/update", m.Handler.Update)
}

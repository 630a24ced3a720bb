package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	handlers "github.com/mendly/mendly-backend/internal/interface/http"
	"github.com/mendly/mendly-backend/internal/interface/middleware"
)

// PrincipalModule wires signup, login and the token-gated routes.
// Public: POST /users, /admin, /userlogin, /adminlogin
// User token: GET /userhome
// Admin token: GET /adminhome, /findusers, /findusers/:accessToken
type PrincipalModule struct {
	Handler *handlers.PrincipalHandler
	Auth    middleware.Authenticator
	Logger  *logrus.Logger
}

func NewPrincipalModule(h *handlers.PrincipalHandler, auth middleware.Authenticator, logger *logrus.Logger) *PrincipalModule {
	return &PrincipalModule{Handler: h, Auth: auth, Logger: logger}
}

func (m *PrincipalModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.SignupUser)
	rg.POST("/admin", m.Handler.SignupAdmin)
	rg.POST("/userlogin", m.Handler.Login(entity.KindUser))
	rg.POST("/adminlogin", m.Handler.Login(entity.KindAdmin))

	userOnly := middleware.RequirePrincipal(m.Auth, entity.KindUser, m.Logger)
	rg.GET("/userhome", userOnly, m.Handler.Home)

	admin := rg.Group("/")
	admin.Use(middleware.RequirePrincipal(m.Auth, entity.KindAdmin, m.Logger))
	{
		admin.GET("/adminhome", m.Handler.Home)
		admin.GET("/findusers", m.Handler.ListUsers)
		admin.GET("/findusers/:accessToken", m.Handler.FindUsersByToken)
	}
}

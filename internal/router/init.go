package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mendly/mendly-backend/internal/container"
	handlers "github.com/mendly/mendly-backend/internal/interface/http"
	"github.com/mendly/mendly-backend/internal/interface/middleware"
	"github.com/mendly/mendly-backend/internal/router/modules"
)

// InitModules builds services and handlers from the container and adds the
// feature modules to the registry.
func InitModules(r *Registry, c *container.Container) {
	principals := c.PrincipalService()
	assignments := c.AssignmentService()

	r.Add(modules.NewSystemModule(handlers.NewSystemHandler(principals, c.Logger)))
	r.Add(modules.NewPrincipalModule(handlers.NewPrincipalHandler(principals, c.Logger), principals, c.Logger))
	r.Add(modules.NewAssignmentModule(handlers.NewAssignmentHandler(assignments, c.Logger)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// New returns the engine with global middleware and every module registered.
func New(c *container.Container) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery())

	reg := NewRegistry(e)
	reg.Use(middleware.RequestIDMiddleware(), middleware.RealIP())
	if c.Config.HTTPLogEnabled {
		reg.Use(middleware.AccessLog(c.Logger))
	}
	reg.Use(cors.New(corsConfig(c.Config.CORSOrigins())), middleware.Timeout(c.Config.RequestTimeout))

	InitModules(reg, c)
	reg.RegisterAll()
	return e
}

// Tokens travel in the Authorization header, so credentials are never needed.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
